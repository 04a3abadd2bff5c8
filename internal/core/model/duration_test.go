package model

import (
	"strings"
	"testing"
	"time"
)

func TestParseComponent(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"0", 0},
		{"25", 25},
		{"abc", 0},
		{"1a2", 12},
		{"-5", 5},
		{" 7 ", 7},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := ParseComponent(tc.input); got != tc.want {
			t.Errorf("ParseComponent(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("1h 30m"); got != "130" {
		t.Fatalf("expected 130, got %q", got)
	}
	if got := Digits("abc"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSecondsFromParts(t *testing.T) {
	if got := SecondsFromParts(1, 2, 3); got != 3723 {
		t.Fatalf("expected 3723, got %d", got)
	}
	if got := SecondsFromParts(-1, 0, 5); got != 5 {
		t.Fatalf("expected negative hours to clamp, got %d", got)
	}
}

func TestSplitSecondsInvertsParts(t *testing.T) {
	hours, minutes, seconds := SplitSeconds(SecondsFromParts(2, 59, 30))
	if hours != 2 || minutes != 59 || seconds != 30 {
		t.Fatalf("unexpected split %d:%d:%d", hours, minutes, seconds)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:      "00:00:00",
		5:      "00:00:05",
		65:     "00:01:05",
		3600:   "01:00:00",
		86399:  "23:59:59",
		360000: "100:00:00",
		-3:     "00:00:00",
	}
	for input, want := range cases {
		if got := FormatClock(input); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", input, got, want)
		}
	}
}

func TestModeToggle(t *testing.T) {
	if ModeFocus.Toggle() != ModeRest || ModeRest.Toggle() != ModeFocus {
		t.Fatal("toggle should swap focus and rest")
	}
	if Mode("nap").Valid() {
		t.Fatal("unknown mode should be invalid")
	}
}

func TestNewSessionRecord(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 15, 987654321, time.Local)
	record := NewSessionRecord(ModeFocus, 90, at)

	if record.ID == "" {
		t.Fatal("expected record id")
	}
	if record.Title != "focus" {
		t.Fatalf("expected default title focus, got %q", record.Title)
	}
	if record.Timestamp.Nanosecond() != 0 {
		t.Fatalf("expected timestamp truncated to seconds, got %v", record.Timestamp)
	}
	want := "focus 00:01:30 completed - 2024-03-01 09:30:15"
	if record.String() != want {
		t.Fatalf("unexpected rendering %q", record.String())
	}

	other := NewSessionRecord(ModeFocus, -1, at)
	if other.ElapsedSeconds != 0 {
		t.Fatalf("expected negative elapsed to clamp, got %d", other.ElapsedSeconds)
	}
	if strings.EqualFold(other.ID, record.ID) {
		t.Fatal("expected unique record ids")
	}
}
