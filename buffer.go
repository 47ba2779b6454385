package textfmt

import (
	"io"
	"unicode/utf8"
)

// Char is the code unit of a [Buffer]: byte for narrow output, rune for wide
// output.
type Char interface {
	byte | rune
}

// Sink is the target a [Streamer] renders into. It accepts ordered writes of
// bytes, strings and runes; Wide reports whether the underlying buffer stores
// code points rather than bytes.
type Sink interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	WriteRune(r rune) (int, error)
	Wide() bool
}

// Buffer is an append-only, growable sequence of C. It accumulates the
// output of a whole format call and doubles as the [Sink] custom values
// render into.
//
// A Buffer is not safe for concurrent use.
type Buffer[C Char] struct {
	data []C

	// partial holds the leading bytes of a UTF-8 sequence split across
	// writes in wide mode.
	partial []byte
}

var (
	_ Sink = (*Buffer[byte])(nil)
	_ Sink = (*Buffer[rune])(nil)
)

// Append appends units to b.
func (b *Buffer[C]) Append(units ...C) {
	b.flush()
	b.data = append(b.data, units...)
}

// Len returns the number of units in b.
func (b *Buffer[C]) Len() int {
	b.flush()
	return len(b.data)
}

// Data returns the contents of b. The slice aliases b until the next append.
// An unfinished UTF-8 sequence left by byte writes in wide mode is decoded
// as U+FFFD per byte.
func (b *Buffer[C]) Data() []C {
	b.flush()
	return b.data
}

// Reset empties b, keeping its storage.
func (b *Buffer[C]) Reset() {
	b.data = b.data[:0]
	b.partial = nil
}

// truncate shrinks b back to n units.
func (b *Buffer[C]) truncate(n int) {
	b.partial = nil
	b.data = b.data[:n]
}

// flush gives up on an unfinished UTF-8 sequence.
func (b *Buffer[C]) flush() {
	var replacement rune = utf8.RuneError
	for range b.partial {
		b.data = append(b.data, C(replacement))
	}
	b.partial = nil
}

// String returns the contents of b as UTF-8 text.
func (b *Buffer[C]) String() string {
	b.flush()
	switch d := any(b.data).(type) {
	case []byte:
		return string(d)
	case []rune:
		return string(d)
	}
	return ""
}

// Wide reports whether b stores code points.
func (b *Buffer[C]) Wide() bool {
	_, ok := any(b.data).([]rune)
	return ok
}

// Write appends p. In wide mode p is decoded as UTF-8; a sequence cut off at
// the end of p is completed by the next write.
func (b *Buffer[C]) Write(p []byte) (int, error) {
	if d, ok := any(&b.data).(*[]byte); ok {
		*d = append(*d, p...)
		return len(p), nil
	}
	n := len(p)
	if len(b.partial) > 0 {
		p = append(b.partial, p...)
		b.partial = nil
	}
	for len(p) > 0 {
		if !utf8.FullRune(p) {
			b.partial = append([]byte(nil), p...)
			break
		}
		r, size := utf8.DecodeRune(p)
		b.data = append(b.data, C(r))
		p = p[size:]
	}
	return n, nil
}

// WriteString appends s. In wide mode s is decoded as UTF-8.
func (b *Buffer[C]) WriteString(s string) (int, error) {
	if d, ok := any(&b.data).(*[]byte); ok {
		*d = append(*d, s...)
		return len(s), nil
	}
	return b.Write([]byte(s))
}

// WriteByte appends c. In wide mode c is one byte of UTF-8.
func (b *Buffer[C]) WriteByte(c byte) error {
	if d, ok := any(&b.data).(*[]byte); ok {
		*d = append(*d, c)
		return nil
	}
	_, err := b.Write([]byte{c})
	return err
}

// WriteRune appends r, UTF-8 encoded in narrow mode.
func (b *Buffer[C]) WriteRune(r rune) (int, error) {
	if d, ok := any(&b.data).(*[]byte); ok {
		*d = utf8.AppendRune(*d, r)
		return utf8.RuneLen(r), nil
	}
	b.flush()
	b.data = append(b.data, C(r))
	return utf8.RuneLen(r), nil
}

// appendFill appends n copies of fill.
func (b *Buffer[C]) appendFill(fill rune, n int) {
	for range n {
		_, _ = b.WriteRune(fill)
	}
}
