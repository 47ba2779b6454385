package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if items == nil {
		items = []T{}
	}
	return enc.Encode(items)
}

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if items == nil {
		items = []T{}
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV[T any](w io.Writer, items []T) error {
	rows, err := rowsOf(CSV, items)
	if err != nil || len(rows) == 0 {
		return err
	}
	cw := csv.NewWriter(w)
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePlain[T any](w io.Writer, items []T) error {
	rows, err := rowsOf(Plain, items)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
