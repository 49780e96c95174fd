package helper

import (
	"errors"
	"time"
)

// DateLayout is the wire format for every date field: dd-MM-yyyy.
const DateLayout = "02-01-2006"

var ErrInvalidDate = errors.New("invalid date format, use dd-MM-yyyy")

// ParseDate parses a dd-MM-yyyy string. Rejects out-of-range dates
// such as 31-02-2025.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a time back to dd-MM-yyyy for responses.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
