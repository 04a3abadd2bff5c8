package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComponent converts a user-entered hour, minute, second or repeat
// count into a non-negative integer. Non-digit characters are dropped, and
// empty or overflowing input yields 0.
func ParseComponent(text string) int {
	digits := Digits(text)
	if digits == "" {
		return 0
	}
	value, err := strconv.Atoi(digits)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// Digits keeps only the ASCII digits of text.
func Digits(text string) string {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// SecondsFromParts combines hour, minute and second components.
func SecondsFromParts(hours, minutes, seconds int) int {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	return hours*3600 + minutes*60 + seconds
}

// SplitSeconds breaks a duration into hour, minute and second components.
func SplitSeconds(total int) (hours, minutes, seconds int) {
	if total < 0 {
		total = 0
	}
	return total / 3600, (total % 3600) / 60, total % 60
}

// FormatClock renders seconds as zero-padded HH:MM:SS.
func FormatClock(total int) string {
	hours, minutes, seconds := SplitSeconds(total)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
