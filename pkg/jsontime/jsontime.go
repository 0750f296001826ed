// Package jsontime provides a JSON timestamp type that tolerates
// offset-less input by assuming UTC, and always serializes with a UTC
// offset.
package jsontime

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for timestamps without a UTC offset.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// UTCTime wraps time.Time for JSON (de)serialization. Input with an
// explicit offset is converted to UTC; input without one is assumed
// to already be UTC.
type UTCTime struct {
	time.Time
}

// New returns a UTCTime normalized to UTC.
func New(t time.Time) UTCTime {
	return UTCTime{Time: t.UTC()}
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed.UTC()
		return nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}
