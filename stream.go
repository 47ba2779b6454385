package textfmt

import (
	"io"
	"iter"
	"os"
	"unsafe"
)

// Signed is the set of length types a raw write primitive may use.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// RawWriter is a stream whose write primitive reports the accepted length as
// an N. [WriteBuffer] never passes it more than [MaxChunk][N]() bytes at
// once.
type RawWriter[N Signed] interface {
	WriteRaw(p []byte) (N, error)
}

// MaxChunk returns the largest length representable by N, capped at the
// largest int.
func MaxChunk[N Signed]() int {
	var n N
	bits := unsafe.Sizeof(n) * 8
	if bits >= unsafe.Sizeof(int(0))*8 {
		return int(^uint(0) >> 1)
	}
	return 1<<(bits-1) - 1
}

// Chunks yields the (offset, length) pairs that split size bytes into
// pieces of at most limit. Every length is limit except possibly the last,
// which is size%limit when that is non-zero. A limit of zero or less means no
// limit. Nothing is yielded for size 0.
func Chunks(size, limit int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		step := limit
		if step <= 0 {
			step = size
		}
		for off := 0; off < size; off += step {
			n := min(size-off, step)
			if !yield(off, n) {
				return
			}
		}
	}
}

// WriteBuffer writes data to w in order. When N is narrower than int the
// data is split per [Chunks] with one WriteRaw call per chunk; otherwise it
// is handed over in a single call. An empty buffer produces no calls.
//
// A chunk that is not fully accepted stops the write: a short count with no
// error is reported as [io.ErrShortWrite], a count larger than the chunk or
// negative as [ErrInvalidWrite]. Either way the returned error is an
// [*IOError]. No chunk is retried.
func WriteBuffer[N Signed](w RawWriter[N], data []byte) error {
	if len(data) == 0 {
		return nil
	}
	limit := MaxChunk[N]()
	if limit == MaxChunk[int]() {
		return writeChunk(w, data, 0)
	}
	for off, n := range Chunks(len(data), limit) {
		if err := writeChunk(w, data[off:off+n], off); err != nil {
			return err
		}
	}
	return nil
}

func writeChunk[N Signed](w RawWriter[N], chunk []byte, off int) error {
	n, err := w.WriteRaw(chunk)
	if err != nil {
		return &IOError{Op: "write", Offset: off, Err: err}
	}
	switch {
	case n < 0 || int64(n) > int64(len(chunk)):
		return &IOError{Op: "write", Offset: off, Err: ErrInvalidWrite}
	case int64(n) < int64(len(chunk)):
		return &IOError{Op: "write", Offset: off, Err: io.ErrShortWrite}
	}
	return nil
}

type rawWriter[N Signed] struct {
	w io.Writer
}

// NewRawWriter adapts w to a [RawWriter] whose lengths are N. Writes go to w
// unchanged; N only bounds how much [WriteBuffer] passes per call.
func NewRawWriter[N Signed](w io.Writer) RawWriter[N] {
	return rawWriter[N]{w: w}
}

func (r rawWriter[N]) WriteRaw(p []byte) (N, error) {
	n, err := r.w.Write(p)
	return N(n), err
}

// Fprint formats args according to format and writes the result to w. A
// format error is returned before anything reaches w.
func Fprint(w io.Writer, format string, args ...any) error {
	return FprintTo(NewRawWriter[int](w), format, args...)
}

// FprintTo is like [Fprint] for a stream with a bounded write length.
func FprintTo[N Signed](w RawWriter[N], format string, args ...any) error {
	var buf Buffer[byte]
	if err := FormatTo(&buf, format, args...); err != nil {
		return err
	}
	return WriteBuffer(w, buf.Data())
}

// Print formats to standard output.
func Print(format string, args ...any) error {
	return Fprint(os.Stdout, format, args...)
}
