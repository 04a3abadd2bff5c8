package todo

import (
	"errors"
	"testing"
)

func TestAddIgnoresBlankText(t *testing.T) {
	list := New()

	if _, ok := list.Add("   "); ok {
		t.Fatal("blank text must be ignored")
	}
	item, ok := list.Add("  read chapter 4 ")
	if !ok {
		t.Fatal("expected item to be added")
	}
	if item.Text != "read chapter 4" || item.ID == "" || item.Done {
		t.Fatalf("unexpected item %+v", item)
	}
	if len(list.Items()) != 1 {
		t.Fatalf("expected one item, got %d", len(list.Items()))
	}
}

func TestToggleAndRemaining(t *testing.T) {
	list := New()
	list.Add("a")
	list.Add("b")
	list.Add("c")

	if err := list.Toggle(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if list.Remaining() != 2 {
		t.Fatalf("expected 2 remaining, got %d", list.Remaining())
	}
	if err := list.Toggle(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if list.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", list.Remaining())
	}
	if err := list.Toggle(3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	list := New()
	list.Add("a")
	list.Add("b")

	if err := list.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items := list.Items()
	if len(items) != 1 || items[0].Text != "b" {
		t.Fatalf("unexpected items %+v", items)
	}
	if err := list.Remove(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPledge(t *testing.T) {
	list := New()
	calls := 0
	list.OnChange(func() { calls++ })

	list.SetPledge("  finish the problem set  ")
	if list.Pledge() != "finish the problem set" {
		t.Fatalf("unexpected pledge %q", list.Pledge())
	}
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}
