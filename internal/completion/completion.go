// Package completion implements the rules for recording and querying
// whether a habit counts as done for a given day or week. All functions
// are pure: "now" is always passed in, never read from the clock.
package completion

import (
	"time"

	"github.com/mtwalsh/habitgrid/internal/constants"
	"github.com/mtwalsh/habitgrid/internal/models"
)

// MonthBucket returns the YYYY-MM string that scopes weekly completion.
func MonthBucket(now time.Time) string {
	return now.Format(constants.BucketFormat)
}

// IsCompleted reports whether the habit counts as done for the given
// day-cell at the given time.
//
// Daily habits use plain membership of the bare day marker. Weekly
// habits are satisfied by any marker in the current month bucket,
// whichever day it was recorded on: marking one scheduled day marks the
// whole month. The recorded day token is informational only.
func IsCompleted(h models.Habit, day models.Day, now time.Time) bool {
	if h.Frequency == models.FrequencyWeekly {
		bucket := MonthBucket(now)
		for _, m := range h.CompletedDays {
			if m.Bucket == bucket {
				return true
			}
		}
		return false
	}

	for _, m := range h.CompletedDays {
		if m.Bucket == "" && m.Day == day {
			return true
		}
	}
	return false
}

// Toggle flips the completion state of the habit for the given day and
// returns the habit with its markers rewritten. Callers are expected to
// gate on IsScheduled; unscheduled days are not re-validated here.
//
// Daily: symmetric set-toggle of the bare day marker. Weekly: if any
// marker exists for the current month bucket, all of them are removed
// (clearing the whole month); otherwise exactly one bucket+day marker
// is appended.
func Toggle(h models.Habit, day models.Day, now time.Time) models.Habit {
	if h.Frequency == models.FrequencyWeekly {
		bucket := MonthBucket(now)
		if IsCompleted(h, day, now) {
			kept := make([]models.Marker, 0, len(h.CompletedDays))
			for _, m := range h.CompletedDays {
				if m.Bucket != bucket {
					kept = append(kept, m)
				}
			}
			h.CompletedDays = kept
		} else {
			h.CompletedDays = appendMarker(h.CompletedDays, models.Marker{Bucket: bucket, Day: day})
		}
		return h
	}

	if IsCompleted(h, day, now) {
		kept := make([]models.Marker, 0, len(h.CompletedDays))
		for _, m := range h.CompletedDays {
			if !(m.Bucket == "" && m.Day == day) {
				kept = append(kept, m)
			}
		}
		h.CompletedDays = kept
	} else {
		h.CompletedDays = appendMarker(h.CompletedDays, models.Marker{Day: day})
	}
	return h
}

// appendMarker copies before appending so the input habit's marker
// slice is never aliased by the result.
func appendMarker(markers []models.Marker, m models.Marker) []models.Marker {
	out := make([]models.Marker, 0, len(markers)+1)
	out = append(out, markers...)
	return append(out, m)
}
