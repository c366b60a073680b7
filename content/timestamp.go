package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wire profile shared with the backend: local wall-clock
// time, seconds precision, no timezone offset. Changing this breaks the
// backend contract.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with the backend's textual profile. The zero value
// marks an unset field and serializes to an empty string.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to seconds precision under the wire profile.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: t.Truncate(time.Second)}
}

// ParseTimestamp decodes a wire-profile string. Empty input yields the zero
// Timestamp without error.
func ParseTimestamp(value string) (Timestamp, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Timestamp{}, nil
	}
	parsed, err := time.Parse(TimestampLayout, trimmed)
	if err != nil {
		return Timestamp{}, fmt.Errorf("content: parse timestamp %q: %w", value, err)
	}
	return Timestamp{Time: parsed}, nil
}

// String renders the wire-profile representation, empty for the zero value.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp as a wire-profile JSON string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a wire-profile JSON string; null and "" decode to the
// zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content: timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
