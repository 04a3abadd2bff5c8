package timer

import (
	"time"

	"studytimer/internal/core/model"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventTick             EventType = "tick"
	EventRecorded         EventType = "recorded"
	EventIntervalComplete EventType = "interval_complete"
)

// Event represents an Engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Finished is the mode of the interval that just reached zero.
	Finished model.Mode
	// Elapsed is the length in seconds of the interval that just reached zero.
	Elapsed  int
	Record   *model.SessionRecord
	At       time.Time
}

// Snapshot is a copy of the engine state taken under its lock.
type Snapshot struct {
	Mode             model.Mode
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	RepeatMode       bool
	RoundsRemaining  int
	FocusSeconds     int
	RestSeconds      int
}

// Progress returns the remaining fraction of the current interval.
func (snapshot Snapshot) Progress() float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Idle reports whether no interval is in progress.
func (snapshot Snapshot) Idle() bool {
	return !snapshot.Running && snapshot.RemainingSeconds <= 0
}
