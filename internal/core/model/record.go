package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the display format of record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// SessionRecord is one finished or manually stopped interval.
type SessionRecord struct {
	ID             string
	Title          string
	Mode           Mode
	ElapsedSeconds int
	Timestamp      time.Time
}

// NewSessionRecord creates a record titled after its mode.
func NewSessionRecord(mode Mode, elapsedSeconds int, at time.Time) SessionRecord {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return SessionRecord{
		ID:             uuid.NewString(),
		Title:          string(mode),
		Mode:           mode,
		ElapsedSeconds: elapsedSeconds,
		Timestamp:      at.Truncate(time.Second),
	}
}

// String renders the record the way the history list shows it.
func (record SessionRecord) String() string {
	return fmt.Sprintf("%s %s completed - %s",
		record.Title,
		FormatClock(record.ElapsedSeconds),
		record.Timestamp.Format(TimestampLayout),
	)
}
