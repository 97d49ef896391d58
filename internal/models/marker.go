package models

import (
	"encoding/json"
	"fmt"
)

// Marker is a single completion record. A daily habit stores bare day
// markers (empty Bucket); a weekly habit stores month-scoped markers
// whose Bucket is the YYYY-MM string of the month they were set in.
type Marker struct {
	Bucket string
	Day    Day
}

// String renders the wire format: "Mon" for daily markers,
// "2024-05-Wed" for weekly ones.
func (m Marker) String() string {
	if m.Bucket == "" {
		return string(m.Day)
	}
	return m.Bucket + "-" + string(m.Day)
}

// ParseMarker parses the wire format back into a Marker.
func ParseMarker(s string) (Marker, error) {
	// Month-scoped form: YYYY-MM-<day token>
	if len(s) > 8 && s[4] == '-' && s[7] == '-' {
		day, err := ParseDay(s[8:])
		if err != nil {
			return Marker{}, fmt.Errorf("invalid completion marker %q: %w", s, err)
		}
		return Marker{Bucket: s[:7], Day: day}, nil
	}
	day, err := ParseDay(s)
	if err != nil {
		return Marker{}, fmt.Errorf("invalid completion marker %q: %w", s, err)
	}
	return Marker{Day: day}, nil
}

func (m Marker) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Marker) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMarker(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
