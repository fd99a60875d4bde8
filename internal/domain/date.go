package domain

import (
	"fmt"
	"time"
)

// DayFormat is the layout for dates in API responses, e.g. "Mon Jan 01 2024".
const DayFormat = "Mon Jan 02 2006"

// dateLayouts are the accepted input shapes. DayFormat is included so a
// date string taken from a response parses back onto the same calendar day.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DayFormat,
}

// ParseDate parses a caller-supplied date string. Layouts without an
// explicit zone resolve in UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
