package pure

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/date/v2"
)

var (
	ErrMalformedDate = errors.New("malformed date, want month/day/year")
	ErrInvalidDate   = errors.New("no such calendar date")
)

// ParseDate parses a month/day/year string such as "12/31/2021".
//
// Month and day take one or two digits, the year one to four (1 to 9999).
// Whitespace around the date is ignored; anything else around it is not.
func ParseDate(s string) (date.Date, error) {
	var zero date.Date
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return zero, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	month, okMonth := atoi(parts[0], 1, 2)
	day, okDay := atoi(parts[1], 1, 2)
	year, okYear := atoi(parts[2], 1, 4)
	if !okMonth || !okDay || !okYear {
		return zero, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return zero, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed)
	}
	d := date.New(year, time.Month(month), day)
	// date.New normalizes overflow, e.g. 02/30 becomes 03/02
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return zero, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed)
	}
	return d, nil
}

// atoi parses an unsigned decimal of minLen to maxLen ASCII digits.
func atoi(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
