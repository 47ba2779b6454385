package textfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// argFormatter writes one argument into out according to spec. It is the
// per-argument [Visitor] the engine dispatches to.
type argFormatter[C Char] struct {
	out  *Buffer[C]
	spec Spec
}

var _ Visitor[error] = argFormatter[byte]{}

func (f argFormatter[C]) VisitNone() error {
	return f.writeText("<nil>")
}

func (f argFormatter[C]) VisitBool(v bool) error {
	return f.writeText(strconv.FormatBool(v))
}

func (f argFormatter[C]) VisitString(v string) error {
	return f.writeText(v)
}

func (f argFormatter[C]) VisitCustom(v Streamer) error {
	return FormatCustom(v, f.spec, f.out)
}

func (f argFormatter[C]) VisitInt(v int64) error {
	if v < 0 {
		return f.writeInteger(true, ^uint64(v)+1)
	}
	return f.writeInteger(false, uint64(v))
}

func (f argFormatter[C]) VisitUint(v uint64) error {
	return f.writeInteger(false, v)
}

func (f argFormatter[C]) VisitFloat(v float64) error {
	spec := f.spec
	var verb byte
	switch spec.Type {
	case 0:
		verb = 'g'
	case 'f', 'F', 'e', 'E', 'g', 'G':
		verb = byte(spec.Type)
	default:
		return formatErrorf("invalid type specifier '%c' for float argument", spec.Type)
	}
	prec := -1
	if spec.HasPrecision {
		prec = spec.Precision
	}
	upper := verb == 'F'
	if upper {
		verb = 'f'
	}

	digits := strconv.FormatFloat(math.Abs(v), verb, prec, 64)
	digits = strings.TrimPrefix(digits, "+")
	if spec.Alt && !strings.ContainsAny(digits, ".IN") {
		if i := strings.IndexAny(digits, "eE"); i >= 0 {
			digits = digits[:i] + "." + digits[i:]
		} else {
			digits += "."
		}
	}
	if upper {
		digits = strings.ToUpper(digits)
	}
	f.writeNumber(signOf(math.Signbit(v) && !math.IsNaN(v), spec.Sign), digits)
	return nil
}

func (f argFormatter[C]) writeInteger(neg bool, u uint64) error {
	spec := f.spec
	if spec.HasPrecision {
		return formatErrorf("precision not allowed for integer argument")
	}
	base, prefix, upper := 10, "", false
	switch spec.Type {
	case 0, 'd':
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix, upper = 16, "0X", true
	case 'o':
		base, prefix = 8, "0o"
	case 'b':
		base, prefix = 2, "0b"
	case 'c':
		if c, ok := spec.NumericOption(); ok {
			return formatErrorf("format specifier '%c' not allowed with 'c'", c)
		}
		if neg || u > utf8.MaxRune {
			return formatErrorf("character code out of range")
		}
		f.writeUnits(units[C](string(rune(u))), AlignLeft)
		return nil
	default:
		return formatErrorf("invalid type specifier '%c' for integer argument", spec.Type)
	}

	digits := strconv.FormatUint(u, base)
	if upper {
		digits = strings.ToUpper(digits)
	}
	lead := signOf(neg, spec.Sign)
	if spec.Alt {
		lead += prefix
	}
	f.writeNumber(lead, digits)
	return nil
}

func signOf(neg bool, s Sign) string {
	switch {
	case neg:
		return "-"
	case s == SignPlus:
		return "+"
	case s == SignSpace:
		return " "
	default:
		return ""
	}
}

// writeNumber pads lead+digits. With '=' alignment, or '0' and no explicit
// alignment, the fill goes between lead and digits.
func (f argFormatter[C]) writeNumber(lead, digits string) {
	spec := f.spec
	if spec.Zero && spec.Align == AlignDefault {
		spec.Align, spec.Fill = AlignNumeric, '0'
	}
	if spec.Align != AlignNumeric {
		writePadded(f.out, units[C](lead+digits), spec, AlignRight)
		return
	}
	head := units[C](lead)
	body := units[C](digits)
	f.out.Append(head...)
	spec.Width -= len(head)
	writePadded(f.out, body, spec, AlignRight)
}

// writeText formats a non-numeric built-in value. It follows the same rules
// as a custom value: numeric-only options are rejected and precision
// truncates.
func (f argFormatter[C]) writeText(s string) error {
	if c, ok := f.spec.NumericOption(); ok {
		return requiresNumeric(c)
	}
	if f.spec.Type != 0 && f.spec.Type != 's' {
		return formatErrorf("invalid type specifier '%c' for string argument", f.spec.Type)
	}
	f.writeUnits(truncate(units[C](s), f.spec), AlignLeft)
	return nil
}

func (f argFormatter[C]) writeUnits(text []C, def Alignment) {
	writePadded(f.out, text, f.spec, def)
}

func units[C Char](s string) []C {
	var b Buffer[C]
	_, _ = b.WriteString(s)
	return b.Data()
}
