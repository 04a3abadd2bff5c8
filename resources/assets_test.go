package resources

import "testing"

func TestIconLoadsAndCaches(t *testing.T) {
	first, err := Icon("app.svg")
	if err != nil {
		t.Fatalf("load icon: %v", err)
	}
	if len(first.Content()) == 0 {
		t.Fatal("expected icon content")
	}
	second := MustIcon("app.svg")
	if first != second {
		t.Fatal("expected cached resource")
	}
	if _, err := Icon("missing.svg"); err == nil {
		t.Fatal("expected error for missing icon")
	}
}
