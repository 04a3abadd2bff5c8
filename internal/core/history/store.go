package history

import (
	"errors"
	"strings"
	"sync"

	"studytimer/internal/core/model"
)

var (
	// ErrNotFound indicates an index outside the stored records.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyTitle indicates a rename to a blank title.
	ErrEmptyTitle = errors.New("record title is empty")
)

// Store keeps finished session records in the order they were appended.
type Store struct {
	mu        sync.Mutex
	records   []model.SessionRecord
	listeners []func()
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// OnChange registers a callback fired after every mutation.
func (store *Store) OnChange(listener func()) {
	if listener == nil {
		return
	}
	store.mu.Lock()
	store.listeners = append(store.listeners, listener)
	store.mu.Unlock()
}

// Append adds a record at the end of the list.
func (store *Store) Append(record model.SessionRecord) {
	store.mu.Lock()
	store.records = append(store.records, record)
	store.mu.Unlock()
	store.notify()
}

// Rename replaces the title of the record at index.
func (store *Store) Rename(index int, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	store.mu.Lock()
	if index < 0 || index >= len(store.records) {
		store.mu.Unlock()
		return ErrNotFound
	}
	store.records[index].Title = title
	store.mu.Unlock()
	store.notify()
	return nil
}

// Delete removes the record at index.
func (store *Store) Delete(index int) error {
	store.mu.Lock()
	if index < 0 || index >= len(store.records) {
		store.mu.Unlock()
		return ErrNotFound
	}
	store.records = append(store.records[:index], store.records[index+1:]...)
	store.mu.Unlock()
	store.notify()
	return nil
}

// Records returns a copy of all records.
func (store *Store) Records() []model.SessionRecord {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]model.SessionRecord(nil), store.records...)
}

// At returns the record at index.
func (store *Store) At(index int) (model.SessionRecord, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if index < 0 || index >= len(store.records) {
		return model.SessionRecord{}, false
	}
	return store.records[index], true
}

// Len returns the number of records.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.records)
}

// TotalElapsedSeconds sums the elapsed time of all records.
func (store *Store) TotalElapsedSeconds() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	total := 0
	for _, record := range store.records {
		total += record.ElapsedSeconds
	}
	return total
}

func (store *Store) notify() {
	store.mu.Lock()
	listeners := append([]func(){}, store.listeners...)
	store.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}
