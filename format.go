package textfmt

import (
	"strconv"
	"strings"
)

// FormatTo formats args according to format and appends the result to out.
//
// Replacement fields are written {}, {N}, {:spec} or {N:spec}; {{ and }}
// produce literal braces. See [ParseSpec] for the spec mini-language.
//
// If formatting fails, out is restored to its length before the call.
func FormatTo[C Char](out *Buffer[C], format string, args ...any) error {
	start := out.Len()
	e := engine[C]{out: out, args: make([]Arg, len(args))}
	for i, a := range args {
		e.args[i] = MakeArg(a)
	}
	if err := e.run(format); err != nil {
		out.truncate(start)
		return err
	}
	return nil
}

// Format returns the narrow (UTF-8) rendering of format applied to args.
func Format(format string, args ...any) (string, error) {
	var buf Buffer[byte]
	if err := FormatTo(&buf, format, args...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatWide is like [Format] but renders into code points. Precision and
// width count runes rather than bytes, and custom values see a wide [Sink].
func FormatWide(format string, args ...any) ([]rune, error) {
	var buf Buffer[rune]
	if err := FormatTo(&buf, format, args...); err != nil {
		return nil, err
	}
	return buf.Data(), nil
}

// MustFormat is like [Format] but panics on error.
func MustFormat(format string, args ...any) string {
	s, err := Format(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

type engine[C Char] struct {
	out    *Buffer[C]
	args   []Arg
	next   int
	auto   bool
	manual bool
}

func (e *engine[C]) run(format string) error {
	for i := 0; i < len(format); {
		switch format[i] {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				_ = e.out.WriteByte('{')
				i += 2
				continue
			}
			end := closingBrace(format, i)
			if end < 0 {
				return formatErrorf("missing '}' in format string")
			}
			if err := e.field(format[i+1 : end]); err != nil {
				return err
			}
			i = end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				_ = e.out.WriteByte('}')
				i += 2
				continue
			}
			return formatErrorf("unmatched '}' in format string")
		default:
			j := strings.IndexAny(format[i:], "{}")
			if j < 0 {
				j = len(format) - i
			}
			_, _ = e.out.WriteString(format[i : i+j])
			i += j
		}
	}
	return nil
}

// closingBrace returns the index of the '}' closing the field opened at
// start, allowing one level of nested {} for dynamic width and precision.
func closingBrace(format string, start int) int {
	depth := 0
	for j := start; j < len(format); j++ {
		switch format[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (e *engine[C]) field(text string) error {
	id, specText, hasSpec := strings.Cut(text, ":")

	var (
		index int
		err   error
	)
	if id == "" {
		index, err = e.autoIndex()
	} else {
		index, err = e.manualIndex(id)
	}
	if err != nil {
		return err
	}
	arg, err := e.arg(index)
	if err != nil {
		return err
	}

	spec := DefaultSpec()
	if hasSpec {
		if spec, err = ParseSpec(specText); err != nil {
			return err
		}
	}
	if spec, err = e.resolve(spec); err != nil {
		return err
	}
	return Visit[error](argFormatter[C]{out: e.out, spec: spec}, arg)
}

// resolve replaces width and precision argument references with values.
func (e *engine[C]) resolve(spec Spec) (Spec, error) {
	if spec.WidthArg != -1 {
		n, err := e.dynamic(spec.WidthArg, "width")
		if err != nil {
			return Spec{}, err
		}
		spec.Width, spec.WidthArg = n, -1
	}
	if spec.PrecisionArg != -1 {
		n, err := e.dynamic(spec.PrecisionArg, "precision")
		if err != nil {
			return Spec{}, err
		}
		spec.Precision, spec.PrecisionArg, spec.HasPrecision = n, -1, true
	}
	return spec, nil
}

func (e *engine[C]) dynamic(ref int, what string) (int, error) {
	var err error
	if ref == autoIndex {
		if ref, err = e.autoIndex(); err != nil {
			return 0, err
		}
	} else if err = e.useManual(); err != nil {
		return 0, err
	}
	arg, err := e.arg(ref)
	if err != nil {
		return 0, err
	}
	n, ok := arg.intValue()
	if !ok {
		return 0, formatErrorf("%s is not integer", what)
	}
	if n < 0 {
		return 0, formatErrorf("negative %s", what)
	}
	if n > int64(maxInt) {
		return 0, formatErrorf("number is too big")
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

func (e *engine[C]) autoIndex() (int, error) {
	if e.manual {
		return 0, formatErrorf("cannot switch from manual to automatic argument indexing")
	}
	e.auto = true
	i := e.next
	e.next++
	return i, nil
}

func (e *engine[C]) manualIndex(id string) (int, error) {
	i, err := strconv.Atoi(id)
	if err != nil || i < 0 {
		return 0, formatErrorf("invalid format string")
	}
	if err := e.useManual(); err != nil {
		return 0, err
	}
	return i, nil
}

func (e *engine[C]) useManual() error {
	if e.auto {
		return formatErrorf("cannot switch from automatic to manual argument indexing")
	}
	e.manual = true
	return nil
}

func (e *engine[C]) arg(i int) (Arg, error) {
	if i >= len(e.args) {
		return Arg{}, formatErrorf("argument index out of range")
	}
	return e.args[i], nil
}
