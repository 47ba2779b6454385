package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

type tableLayout struct {
	header []string
	widths []int
	aligns []Alignment
	styles []func(string) string
}

func writeTable[T any](w io.Writer, items []T) error {
	rows, err := rowsOf(Table, items)
	if err != nil || len(rows) == 0 {
		return err
	}
	first := any(items[0])

	var l tableLayout
	if h, ok := first.(Headed); ok {
		l.header = h.Header()
	}
	border := BorderRounded
	if b, ok := first.(Bordered); ok {
		border = b.Border()
	}
	if a, ok := first.(Aligned); ok {
		l.aligns = a.Alignments()
	}
	if s, ok := first.(Styled); ok {
		l.styles = s.Styles()
	}

	numCols := len(l.header)
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	l.widths = computeWidths(numCols, l.header, rows)
	l.aligns = extend(l.aligns, numCols)
	l.styles = extend(l.styles, numCols)

	if border == BorderNone {
		return renderPlainTable(w, l, rows)
	}
	return renderBorderedTable(w, l, rows, borderSets[border])
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func extend[E any](s []E, n int) []E {
	if len(s) >= n {
		return s[:n]
	}
	out := make([]E, n)
	copy(out, s)
	return out
}

// cells pads every column of row to its width and applies its style.
func (l tableLayout) cells(row []string) []string {
	out := make([]string, len(l.widths))
	for i, width := range l.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cell = alignCell(cell, width, l.aligns[i])
		if l.styles[i] != nil {
			cell = l.styles[i](cell)
		}
		out[i] = cell
	}
	return out
}

func renderPlainTable(w io.Writer, l tableLayout, rows [][]string) error {
	if len(l.header) > 0 {
		if err := writeLine(w, strings.Join(l.cells(l.header), "  ")); err != nil {
			return err
		}
		sep := make([]string, len(l.widths))
		for i, width := range l.widths {
			sep[i] = strings.Repeat("-", width)
		}
		if err := writeLine(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeLine(w, strings.Join(l.cells(row), "  ")); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(line, " "))
	return err
}

func renderBorderedTable(w io.Writer, l tableLayout, rows [][]string, bc borderChars) error {
	if err := drawHLine(w, l.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(l.header) > 0 {
		if err := drawRow(w, l.cells(l.header), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, l.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawRow(w, l.cells(row), bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, l.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat(fill, width+2)
	}
	_, err := fmt.Fprintln(w, left+strings.Join(parts, mid)+right)
	return err
}

func drawRow(w io.Writer, cells []string, vert string) error {
	_, err := fmt.Fprintln(w, vert+" "+strings.Join(cells, " "+vert+" ")+" "+vert)
	return err
}

// alignCell pads s to width display columns.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
