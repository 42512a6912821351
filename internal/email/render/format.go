// internal/email/render/format.go
package render

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout     = "Monday, January 2, 2006"
	timeLayout     = "3:04 PM"
	dateTimeLayout = "1/2/2006, 3:04:05 PM"
)

// formatDate renders an RFC3339 timestamp as a long-form date, e.g.
// "Saturday, June 7, 2025". The raw value is returned unchanged when it
// does not parse, so a bad timestamp degrades the email instead of
// failing the send.
func formatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format(dateLayout)
}

// formatTime renders an RFC3339 timestamp as a clock time, e.g. "6:00 PM".
func formatTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format(timeLayout)
}

// formatTimeRange renders "6:00 PM" or "6:00 PM - 8:00 PM" when an end
// timestamp is present.
func formatTimeRange(start, end string) string {
	if end == "" {
		return formatTime(start)
	}
	return formatTime(start) + " - " + formatTime(end)
}

// formatDateTime renders a full timestamp, e.g. "6/7/2025, 6:00:00 PM".
func formatDateTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format(dateTimeLayout)
}

// formatHours renders a service-hour count without trailing zeros,
// e.g. 2.5 -> "2.5", 3 -> "3".
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// firstName returns the first token of a full name, or the fallback when
// the name is empty.
func firstName(fullName, fallback string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}
