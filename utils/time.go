package utils

import (
	"fmt"
	"time"
)

// Timestamps come back in whichever layout the writing store used: JSON
// encoding emits RFC 3339, sqlite's datetime() emits a space-separated layout.
var storedTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
}

// ParseStoredTime parses a persisted timestamp, trying each known layout.
func ParseStoredTime(value string) (time.Time, error) {
	for _, layout := range storedTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse stored time %q", value)
}
