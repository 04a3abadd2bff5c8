package todo

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates an index outside the list.
var ErrNotFound = errors.New("to-do item not found")

// Item is a single to-do entry.
type Item struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
}

// List holds the to-do items and the daily pledge note.
type List struct {
	mu        sync.Mutex
	items     []Item
	pledge    string
	now       func() time.Time
	listeners []func()
}

// New creates an empty List.
func New() *List {
	return &List{now: time.Now}
}

// OnChange registers a callback fired after every mutation.
func (list *List) OnChange(listener func()) {
	if listener == nil {
		return
	}
	list.mu.Lock()
	list.listeners = append(list.listeners, listener)
	list.mu.Unlock()
}

// Add appends a new open item. Blank text is ignored.
func (list *List) Add(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}

	list.mu.Lock()
	item := Item{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: list.now().Truncate(time.Second),
	}
	list.items = append(list.items, item)
	list.mu.Unlock()
	list.notify()
	return item, true
}

// Toggle flips the done flag of the item at index.
func (list *List) Toggle(index int) error {
	list.mu.Lock()
	if index < 0 || index >= len(list.items) {
		list.mu.Unlock()
		return ErrNotFound
	}
	list.items[index].Done = !list.items[index].Done
	list.mu.Unlock()
	list.notify()
	return nil
}

// Remove deletes the item at index.
func (list *List) Remove(index int) error {
	list.mu.Lock()
	if index < 0 || index >= len(list.items) {
		list.mu.Unlock()
		return ErrNotFound
	}
	list.items = append(list.items[:index], list.items[index+1:]...)
	list.mu.Unlock()
	list.notify()
	return nil
}

// Items returns a copy of all items in insertion order.
func (list *List) Items() []Item {
	list.mu.Lock()
	defer list.mu.Unlock()
	return append([]Item(nil), list.items...)
}

// Remaining counts the items not yet done.
func (list *List) Remaining() int {
	list.mu.Lock()
	defer list.mu.Unlock()
	count := 0
	for _, item := range list.items {
		if !item.Done {
			count++
		}
	}
	return count
}

// Pledge returns the daily pledge note.
func (list *List) Pledge() string {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.pledge
}

// SetPledge replaces the daily pledge note.
func (list *List) SetPledge(text string) {
	list.mu.Lock()
	list.pledge = strings.TrimSpace(text)
	list.mu.Unlock()
	list.notify()
}

func (list *List) notify() {
	list.mu.Lock()
	listeners := append([]func(){}, list.listeners...)
	list.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}
