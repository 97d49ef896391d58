package cli

import (
	"fmt"
	"time"

	"github.com/mtwalsh/habitgrid/internal/constants"
	"github.com/mtwalsh/habitgrid/internal/storage"
	"github.com/mtwalsh/habitgrid/internal/tracker"
)

type Context struct {
	Provider storage.Provider
	Tracker  *tracker.Tracker
}

// ResolveNow parses an optional --date value into the "now" passed to
// the completion engine. An empty value means the host clock.
func ResolveNow(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	now, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return now, nil
}
