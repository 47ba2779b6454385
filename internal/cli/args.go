package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bjaus/textfmt"
)

// ErrInvalidDate is returned for a date: argument that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

const (
	datePrefix = "date:"
	dateLayout = "2006-1-2"
)

// Date is a calendar date formatted through its own hook as Y-M-D without
// zero padding.
type Date struct {
	Year, Month, Day int
}

// ParseDate parses YYYY-MM-DD. Month and day may omit the leading zero.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// StreamText writes d as Y-M-D.
func (d Date) StreamText(s textfmt.Sink) error {
	_, err := fmt.Fprintf(s, "%d-%d-%d", d.Year, d.Month, d.Day)
	return err
}

// ParseArg turns a command line word into a format argument. Integers win
// over floats, then true and false become booleans and anything else stays
// a string. A date: prefix yields a Date.
func ParseArg(s string) (any, error) {
	if rest, ok := strings.CutPrefix(s, datePrefix); ok {
		return ParseDate(rest)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return s, nil
}

// ParseArgs applies ParseArg to every word.
func ParseArgs(words []string) ([]any, error) {
	args := make([]any, 0, len(words))
	for i, w := range words {
		v, err := ParseArg(w)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, v)
	}
	return args, nil
}
