// Package render presents rows of text in several output formats. The CLI
// uses it to show parsed specs and chunk plans.
//
// Items opt into formats through small interfaces: [Rower] unlocks Table,
// CSV and Plain; [Headed], [Aligned], [Bordered] and [Styled] refine the
// table. JSON and YAML encode any value.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output format.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	Plain Format = "plain"
)

var formats = []Format{Table, JSON, YAML, CSV, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides row data. Required for Table, CSV and Plain.
type Rower interface {
	Row() []string
}

// Headed provides column headers for Table and CSV.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment for Table.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Bordered controls the table border style.
// Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Styled provides per-column style functions for Table. Each function wraps
// the already padded cell, so escape codes never affect widths. Nil entries
// leave a column unstyled.
type Styled interface {
	Styles() []func(string) string
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Write renders items to w in format f.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Table:
		return writeTable(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case CSV:
		return writeCSV(w, items)
	case Plain:
		return writePlain(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func rowsOf[T any](f Format, items []T) ([][]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return nil, fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, items[0])
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = any(item).(Rower).Row()
	}
	return rows, nil
}
