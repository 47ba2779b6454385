package textfmt

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Alignment controls where padding goes when a value is narrower than the
// requested width.
type Alignment int

const (
	AlignDefault Alignment = iota // left for text, right for numbers
	AlignLeft                     // '<'
	AlignRight                    // '>'
	AlignCenter                   // '^'
	AlignNumeric                  // '=' pad between sign and digits
)

var alignChars = map[rune]Alignment{
	'<': AlignLeft,
	'>': AlignRight,
	'^': AlignCenter,
	'=': AlignNumeric,
}

// Char returns the mini-language character for a, or 0 for AlignDefault.
func (a Alignment) Char() rune {
	for c, v := range alignChars {
		if v == a {
			return c
		}
	}
	return 0
}

// Sign controls how the sign of a number is written.
type Sign int

const (
	SignNone  Sign = iota
	SignPlus       // '+'
	SignMinus      // '-' explicit default
	SignSpace      // ' '
)

// Char returns the mini-language character for s, or 0 for SignNone.
func (s Sign) Char() rune {
	switch s {
	case SignPlus:
		return '+'
	case SignMinus:
		return '-'
	case SignSpace:
		return ' '
	default:
		return 0
	}
}

// Spec is a parsed replacement-field specification:
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// Width and precision may also name another argument with {} or {N}; in that
// case WidthArg or PrecisionArg holds the index and the engine resolves it
// before formatting. A Spec is read-only once built.
type Spec struct {
	Fill         rune
	Align        Alignment
	Sign         Sign
	Alt          bool
	Zero         bool
	Width        int
	WidthArg     int
	Precision    int
	HasPrecision bool
	PrecisionArg int
	Type         rune
}

// DefaultSpec returns the spec of a bare "{}" field.
func DefaultSpec() Spec {
	return Spec{Fill: ' ', WidthArg: -1, PrecisionArg: -1}
}

// autoIndex marks a {} width or precision reference that takes the next
// automatic argument index.
const autoIndex = -2

// NumericOption reports the first option in s that only makes sense for a
// number, in the order the options appear in the mini-language.
func (s Spec) NumericOption() (rune, bool) {
	if s.Align == AlignNumeric {
		return '=', true
	}
	if c := s.Sign.Char(); c != 0 {
		return c, true
	}
	if s.Alt {
		return '#', true
	}
	if s.Zero {
		return '0', true
	}
	return 0, false
}

// String renders s back into mini-language text.
func (s Spec) String() string {
	var sb strings.Builder
	if c := s.Align.Char(); c != 0 {
		if s.Fill != ' ' && s.Fill != 0 {
			sb.WriteRune(s.Fill)
		}
		sb.WriteRune(c)
	}
	if c := s.Sign.Char(); c != 0 {
		sb.WriteRune(c)
	}
	if s.Alt {
		sb.WriteByte('#')
	}
	if s.Zero {
		sb.WriteByte('0')
	}
	writeRef(&sb, s.Width, s.WidthArg)
	if s.HasPrecision || s.PrecisionArg != -1 {
		sb.WriteByte('.')
		if s.PrecisionArg == -1 {
			sb.WriteString(strconv.Itoa(s.Precision))
		} else {
			writeRef(&sb, 0, s.PrecisionArg)
		}
	}
	if s.Type != 0 {
		sb.WriteRune(s.Type)
	}
	return sb.String()
}

func writeRef(sb *strings.Builder, n, arg int) {
	switch {
	case arg == autoIndex:
		sb.WriteString("{}")
	case arg >= 0:
		sb.WriteString("{" + strconv.Itoa(arg) + "}")
	case n > 0:
		sb.WriteString(strconv.Itoa(n))
	}
}

const specTypes = "sdxXobcfFeEgG"

// ParseSpec parses the text after the ':' of a replacement field.
func ParseSpec(text string) (Spec, error) {
	s := DefaultSpec()
	p := text

	// Fill and alignment: a fill is any rune followed by an align char.
	if r, size := utf8.DecodeRuneInString(p); size > 0 {
		next, nsize := utf8.DecodeRuneInString(p[size:])
		if a, ok := alignChars[next]; ok && nsize > 0 {
			if r == '{' || r == '}' {
				return Spec{}, formatErrorf("invalid fill character '%c'", r)
			}
			s.Fill, s.Align = r, a
			p = p[size+nsize:]
		} else if a, ok := alignChars[r]; ok {
			s.Align = a
			p = p[size:]
		}
	}

	if len(p) > 0 {
		switch p[0] {
		case '+':
			s.Sign = SignPlus
			p = p[1:]
		case '-':
			s.Sign = SignMinus
			p = p[1:]
		case ' ':
			s.Sign = SignSpace
			p = p[1:]
		}
	}
	if len(p) > 0 && p[0] == '#' {
		s.Alt = true
		p = p[1:]
	}
	if len(p) > 0 && p[0] == '0' {
		s.Zero = true
		p = p[1:]
	}

	var err error
	s.Width, s.WidthArg, p, err = parseRef(p)
	if err != nil {
		return Spec{}, err
	}

	if len(p) > 0 && p[0] == '.' {
		p = p[1:]
		if len(p) == 0 || !(isDigit(p[0]) || p[0] == '{') {
			return Spec{}, formatErrorf("missing precision specifier")
		}
		s.Precision, s.PrecisionArg, p, err = parseRef(p)
		if err != nil {
			return Spec{}, err
		}
		s.HasPrecision = s.PrecisionArg == -1
	}

	if len(p) > 0 {
		r, size := utf8.DecodeRuneInString(p)
		if !strings.ContainsRune(specTypes, r) || size != len(p) {
			return Spec{}, formatErrorf("invalid format specifier")
		}
		s.Type = r
	}
	return s, nil
}

// parseRef reads a decimal integer or a {N} / {} argument reference.
func parseRef(p string) (n, arg int, rest string, err error) {
	arg = -1
	if len(p) > 0 && p[0] == '{' {
		end := strings.IndexByte(p, '}')
		if end < 0 {
			return 0, 0, "", formatErrorf("invalid format string")
		}
		inner := p[1:end]
		if inner == "" {
			return 0, autoIndex, p[end+1:], nil
		}
		idx, convErr := strconv.Atoi(inner)
		if convErr != nil || idx < 0 {
			return 0, 0, "", formatErrorf("invalid format string")
		}
		return 0, idx, p[end+1:], nil
	}
	i := 0
	for i < len(p) && isDigit(p[i]) {
		i++
	}
	if i == 0 {
		return 0, arg, p, nil
	}
	n, convErr := strconv.Atoi(p[:i])
	if convErr != nil {
		return 0, 0, "", formatErrorf("number is too big")
	}
	return n, arg, p[i:], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
