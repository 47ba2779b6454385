package textfmt_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: custom values ---

type testString struct{ s string }

func (t testString) StreamText(s textfmt.Sink) error {
	_, err := s.WriteString(t.s)
	return err
}

type date struct{ year, month, day int }

// StreamText writes the date in several pieces, the way a hand-written
// rendering usually does.
func (d date) StreamText(s textfmt.Sink) error {
	if _, err := fmt.Fprint(s, d.year); err != nil {
		return err
	}
	if _, err := s.WriteRune('-'); err != nil {
		return err
	}
	if _, err := fmt.Fprint(s, d.month); err != nil {
		return err
	}
	if err := s.WriteByte('-'); err != nil {
		return err
	}
	_, err := fmt.Fprint(s, d.day)
	return err
}

type emptyValue struct{}

func (emptyValue) StreamText(textfmt.Sink) error { return nil }

type modeReporter struct{}

func (modeReporter) StreamText(s textfmt.Sink) error {
	mode := "narrow"
	if s.Wide() {
		mode = "wide"
	}
	_, err := s.WriteString(mode)
	return err
}

// byteWiseValue writes its text one byte at a time.
type byteWiseValue struct{ s string }

func (b byteWiseValue) StreamText(s textfmt.Sink) error {
	for i := 0; i < len(b.s); i++ {
		if err := s.WriteByte(b.s[i]); err != nil {
			return err
		}
	}
	return nil
}

// splitValue writes its text in two Write calls cut at byte at.
type splitValue struct {
	s  string
	at int
}

func (v splitValue) StreamText(s textfmt.Sink) error {
	p := []byte(v.s)
	if _, err := s.Write(p[:v.at]); err != nil {
		return err
	}
	_, err := s.Write(p[v.at:])
	return err
}

type pointerValue struct{ name string }

func (p *pointerValue) StreamText(s textfmt.Sink) error {
	_, err := s.WriteString(p.name)
	return err
}

// countingValue records how many times its hook ran.
type countingValue struct{ calls *int }

func (c countingValue) StreamText(s textfmt.Sink) error {
	*c.calls++
	_, err := s.WriteString("counted")
	return err
}

var errHook = errors.New("hook failed")

type failingValue struct{}

func (failingValue) StreamText(s textfmt.Sink) error {
	_, _ = s.WriteString("partial")
	return errHook
}

// --- Test types: enums ---

type hookedEnum int

func (hookedEnum) StreamText(s textfmt.Sink) error {
	_, err := s.WriteString("TestEnum")
	return err
}

type plainEnum int

const plainA plainEnum = 0

type stringerEnum int

func (e stringerEnum) String() string { return [...]string{"red", "green"}[e] }

func posInf() float64 { return math.Inf(1) }

// ============================================================
// Tests
// ============================================================

func TestFormatCustom(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"plain":               {format: "{0}", args: []any{testString{"a string"}}, want: "a string"},
		"multi-part":          {format: "The date is {0}", args: []any{date{2012, 12, 9}}, want: "The date is 2012-12-9"},
		"left":                {format: "{0:<5}", args: []any{testString{"def"}}, want: "def  "},
		"right":               {format: "{0:>5}", args: []any{testString{"def"}}, want: "  def"},
		"center":              {format: "{0:^5}", args: []any{testString{"def"}}, want: " def "},
		"center odd pad":      {format: "{0:^6}", args: []any{testString{"def"}}, want: " def  "},
		"fill":                {format: "{0:*<5}", args: []any{testString{"def"}}, want: "def**"},
		"multi-byte fill":     {format: "{0:·>5}", args: []any{testString{"def"}}, want: "··def"},
		"default is left":     {format: "{0:13}", args: []any{testString{"test"}}, want: "test         "},
		"dynamic width":       {format: "{0:{1}}", args: []any{testString{"test"}, 13}, want: "test         "},
		"precision":           {format: "{0:.2}", args: []any{testString{"test"}}, want: "te"},
		"dynamic precision":   {format: "{0:.{1}}", args: []any{testString{"test"}, 2}, want: "te"},
		"precision and width": {format: "{0:>8.2}", args: []any{testString{"test"}}, want: "      te"},
		"width too small":     {format: "{0:2}", args: []any{testString{"test"}}, want: "test"},
		"auto dynamic width":  {format: "{:{}}|", args: []any{testString{"ab"}, 4}, want: "ab  |"},
		"explicit s type":     {format: "{:s}", args: []any{testString{"x"}}, want: "x"},
		"empty output":        {format: "{}", args: []any{emptyValue{}}, want: ""},
		"empty padded":        {format: "[{:3}]", args: []any{emptyValue{}}, want: "[   ]"},
		"stringer":            {format: "{:>6}", args: []any{stringerEnum(1)}, want: " green"},
		"error value":         {format: "{}", args: []any{errHook}, want: "hook failed"},
		"pointer hook":        {format: "{:>4}", args: []any{&pointerValue{"ab"}}, want: "  ab"},
		"nil pointer hook":    {format: "{:>6}", args: []any{(*pointerValue)(nil)}, want: " <nil>"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.Format(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCustomRunsHookOnce(t *testing.T) {
	t.Parallel()
	var calls int
	got, err := textfmt.Format("{:*^11}", countingValue{calls: &calls})
	require.NoError(t, err)
	assert.Equal(t, "**counted**", got)
	assert.Equal(t, 1, calls)
}

func TestFormatCustomRejectsNumericOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   string
	}{
		"numeric align": {format: "{0:=5}", want: "format specifier '=' requires numeric argument"},
		"plus":          {format: "{0:+}", want: "format specifier '+' requires numeric argument"},
		"minus":         {format: "{0:-}", want: "format specifier '-' requires numeric argument"},
		"space":         {format: "{0: }", want: "format specifier ' ' requires numeric argument"},
		"alternate":     {format: "{0:#}", want: "format specifier '#' requires numeric argument"},
		"zero pad":      {format: "{0:05}", want: "format specifier '0' requires numeric argument"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			var buf textfmt.Buffer[byte]
			_, _ = buf.WriteString("kept")
			err := textfmt.FormatTo(&buf, tt.format, countingValue{calls: &calls})
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, textfmt.ErrFormat)
			var fe *textfmt.FormatError
			assert.ErrorAs(t, err, &fe)
			assert.Equal(t, "kept", buf.String())
			assert.Zero(t, calls)
		})
	}
}

func TestFormatStringRejectsNumericOptions(t *testing.T) {
	t.Parallel()
	_, err := textfmt.Format("{:+}", "text")
	assert.EqualError(t, err, "format specifier '+' requires numeric argument")
}

func TestFormatCustomHookError(t *testing.T) {
	t.Parallel()
	var buf textfmt.Buffer[byte]
	err := textfmt.FormatTo(&buf, "a{}b", failingValue{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errHook)
	assert.ErrorIs(t, err, textfmt.ErrFormat)
	assert.Zero(t, buf.Len())
}

func TestFormatCustomDirect(t *testing.T) {
	t.Parallel()
	var buf textfmt.Buffer[byte]
	err := textfmt.FormatCustom(hookedEnum(0), textfmt.DefaultSpec(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "TestEnum", buf.String())
}

func TestFormatCustomInvalidType(t *testing.T) {
	t.Parallel()
	_, err := textfmt.Format("{:d}", testString{"x"})
	assert.EqualError(t, err, "invalid type specifier 'd' for custom argument")
}

func TestEnum(t *testing.T) {
	t.Parallel()
	assert.True(t, textfmt.IsCustom[hookedEnum]())
	assert.True(t, textfmt.IsCustom[stringerEnum]())
	assert.False(t, textfmt.IsCustom[plainEnum]())
	assert.False(t, textfmt.IsCustom[int]())
	assert.True(t, textfmt.IsCustom[date]())

	assert.Equal(t, "TestEnum", textfmt.MustFormat("{}", hookedEnum(0)))
	assert.Equal(t, "0", textfmt.MustFormat("{}", plainA))
	assert.Equal(t, "+0", textfmt.MustFormat("{:+}", plainA))
	assert.Equal(t, "  7", textfmt.MustFormat("{:3}", plainEnum(7)))
}

func TestMakeArgKinds(t *testing.T) {
	t.Parallel()
	type label string
	tests := map[string]struct {
		value any
		want  textfmt.Kind
	}{
		"nil":          {value: nil, want: textfmt.KindNone},
		"int":          {value: 1, want: textfmt.KindInt},
		"int8":         {value: int8(1), want: textfmt.KindInt},
		"uint16":       {value: uint16(1), want: textfmt.KindUint},
		"float32":      {value: float32(1), want: textfmt.KindFloat},
		"bool":         {value: true, want: textfmt.KindBool},
		"string":       {value: "s", want: textfmt.KindString},
		"bytes":        {value: []byte("s"), want: textfmt.KindString},
		"named string": {value: label("s"), want: textfmt.KindString},
		"plain enum":   {value: plainA, want: textfmt.KindInt},
		"hooked enum":  {value: hookedEnum(0), want: textfmt.KindCustom},
		"stringer":     {value: stringerEnum(0), want: textfmt.KindCustom},
		"struct":       {value: struct{ A int }{1}, want: textfmt.KindCustom},
		"hook pointer": {value: &pointerValue{}, want: textfmt.KindCustom},
		"nil hook ptr": {value: (*pointerValue)(nil), want: textfmt.KindNone},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textfmt.MakeArg(tt.value).Kind())
		})
	}
}

type kindRecorder struct{}

func (kindRecorder) VisitNone() string                     { return "none" }
func (kindRecorder) VisitInt(v int64) string               { return fmt.Sprintf("int %d", v) }
func (kindRecorder) VisitUint(v uint64) string             { return fmt.Sprintf("uint %d", v) }
func (kindRecorder) VisitFloat(v float64) string           { return fmt.Sprintf("float %g", v) }
func (kindRecorder) VisitBool(v bool) string               { return fmt.Sprintf("bool %t", v) }
func (kindRecorder) VisitString(v string) string           { return "string " + v }
func (kindRecorder) VisitCustom(v textfmt.Streamer) string { return "custom" }

func TestVisit(t *testing.T) {
	t.Parallel()
	v := kindRecorder{}
	assert.Equal(t, "none", textfmt.Visit[string](v, textfmt.MakeArg(nil)))
	assert.Equal(t, "int -3", textfmt.Visit[string](v, textfmt.MakeArg(-3)))
	assert.Equal(t, "uint 3", textfmt.Visit[string](v, textfmt.MakeArg(uint(3))))
	assert.Equal(t, "float 1.5", textfmt.Visit[string](v, textfmt.MakeArg(1.5)))
	assert.Equal(t, "bool true", textfmt.Visit[string](v, textfmt.MakeArg(true)))
	assert.Equal(t, "string x", textfmt.Visit[string](v, textfmt.MakeArg("x")))
	assert.Equal(t, "custom", textfmt.Visit[string](v, textfmt.MakeArg(testString{"x"})))
}

func TestFormatWide(t *testing.T) {
	t.Parallel()
	got, err := textfmt.FormatWide("The date is {0}", date{2012, 12, 9})
	require.NoError(t, err)
	assert.Equal(t, []rune("The date is 2012-12-9"), got)

	got, err = textfmt.FormatWide("{}", modeReporter{})
	require.NoError(t, err)
	assert.Equal(t, "wide", string(got))

	narrow, err := textfmt.Format("{}", modeReporter{})
	require.NoError(t, err)
	assert.Equal(t, "narrow", narrow)
}

func TestFormatWidePartialWrites(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value  textfmt.Streamer
		narrow string
		wide   string
	}{
		"byte at a time": {value: byteWiseValue{"héllo"}, narrow: "héllo", wide: "héllo*"},
		"split rune":     {value: splitValue{s: "é", at: 1}, narrow: "é****", wide: "é*****"},
		"split four":     {value: splitValue{s: "a😀b", at: 3}, narrow: "a😀b", wide: "a😀b***"},
		"cut off rune":   {value: splitValue{s: "é"[:1], at: 1}, narrow: "\xc3*****", wide: "\uFFFD*****"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			narrow, err := textfmt.Format("{:*<6}", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.narrow, narrow)

			wide, err := textfmt.FormatWide("{:*<6}", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wide, string(wide))
		})
	}
}

func TestPrecisionCountsUnits(t *testing.T) {
	t.Parallel()
	// Narrow precision is a byte cut and may split a character.
	narrow, err := textfmt.Format("{:.2}", testString{"héllo"})
	require.NoError(t, err)
	assert.Equal(t, "h\xc3", narrow)

	wide, err := textfmt.FormatWide("{:.2}", testString{"héllo"})
	require.NoError(t, err)
	assert.Equal(t, "hé", string(wide))

	padded, err := textfmt.FormatWide("{:*<4}", testString{"hé"})
	require.NoError(t, err)
	assert.Equal(t, "hé**", string(padded))
}

func TestFormatBuiltins(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"literal only":      {format: "plain text", want: "plain text"},
		"escapes":           {format: "{{}}", want: "{}"},
		"escaped field":     {format: "{{{0}}}", args: []any{"x"}, want: "{x}"},
		"string":            {format: "Don't {}!", args: []any{"panic"}, want: "Don't panic!"},
		"string precision":  {format: "{:.3}", args: []any{"abcdef"}, want: "abc"},
		"string right":      {format: "{:>4}", args: []any{"ab"}, want: "  ab"},
		"bool":              {format: "{:>6}", args: []any{true}, want: "  true"},
		"nil":               {format: "{}", args: []any{nil}, want: "<nil>"},
		"int":               {format: "{}", args: []any{42}, want: "42"},
		"int default right": {format: "{:4}", args: []any{42}, want: "  42"},
		"int plus":          {format: "{:+}", args: []any{5}, want: "+5"},
		"int space":         {format: "{: }", args: []any{5}, want: " 5"},
		"int minus":         {format: "{:-}", args: []any{5}, want: "5"},
		"int zero pad":      {format: "{:05}", args: []any{-42}, want: "-0042"},
		"int numeric":       {format: "{:=+6}", args: []any{3}, want: "+    3"},
		"int center":        {format: "{:*^7}", args: []any{42}, want: "**42***"},
		"hex":               {format: "{:#x}", args: []any{255}, want: "0xff"},
		"upper hex":         {format: "{:X}", args: []any{255}, want: "FF"},
		"alt upper hex":     {format: "{:#X}", args: []any{255}, want: "0XFF"},
		"octal":             {format: "{:#o}", args: []any{8}, want: "0o10"},
		"binary":            {format: "{:#b}", args: []any{5}, want: "0b101"},
		"zero pad hex":      {format: "{:#06x}", args: []any{255}, want: "0x00ff"},
		"char":              {format: "{:c}", args: []any{65}, want: "A"},
		"uint8":             {format: "{}", args: []any{uint8(200)}, want: "200"},
		"min int64":         {format: "{}", args: []any{int64(-9223372036854775808)}, want: "-9223372036854775808"},
		"float":             {format: "{}", args: []any{1.5}, want: "1.5"},
		"float fixed":       {format: "{:.2f}", args: []any{3.14159}, want: "3.14"},
		"float zero pad":    {format: "{:08.3f}", args: []any{-1.5}, want: "-001.500"},
		"float exp":         {format: "{:e}", args: []any{1234.5}, want: "1.2345e+03"},
		"float alt":         {format: "{:#.0f}", args: []any{2.0}, want: "2."},
		"float inf":         {format: "{:F}", args: []any{posInf()}, want: "INF"},
		"float plus":        {format: "{:+.1f}", args: []any{2.75}, want: "+2.8"},
		"mixed":             {format: "{0}-{1}-{0}", args: []any{"a", 1}, want: "a-1-a"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.Format(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"missing close":      {format: "{", want: "missing '}' in format string"},
		"unmatched close":    {format: "}", want: "unmatched '}' in format string"},
		"out of range":       {format: "{1}", args: []any{"a"}, want: "argument index out of range"},
		"auto to manual":     {format: "{}{0}", args: []any{"a"}, want: "cannot switch from automatic to manual argument indexing"},
		"manual to auto":     {format: "{0}{}", args: []any{"a"}, want: "cannot switch from manual to automatic argument indexing"},
		"width not integer":  {format: "{0:{1}}", args: []any{"a", "b"}, want: "width is not integer"},
		"negative width":     {format: "{0:{1}}", args: []any{"a", -1}, want: "negative width"},
		"prec not integer":   {format: "{0:.{1}}", args: []any{"a", 1.5}, want: "precision is not integer"},
		"negative precision": {format: "{0:.{1}}", args: []any{"a", -2}, want: "negative precision"},
		"int precision":      {format: "{:.2}", args: []any{5}, want: "precision not allowed for integer argument"},
		"bad spec":           {format: "{:q}", args: []any{5}, want: "invalid format specifier"},
		"missing precision":  {format: "{0:.}", args: []any{"a"}, want: "missing precision specifier"},
		"string type":        {format: "{:x}", args: []any{"abc"}, want: "invalid type specifier 'x' for string argument"},
		"float type":         {format: "{:d}", args: []any{1.5}, want: "invalid type specifier 'd' for float argument"},
		"bad index":          {format: "{a}", args: []any{"a"}, want: "invalid format string"},
		"char too large":     {format: "{:c}", args: []any{uint64(1<<32 + 65)}, want: "character code out of range"},
		"negative char":      {format: "{:c}", args: []any{-65}, want: "character code out of range"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.Format(tt.format, tt.args...)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, textfmt.ErrFormat)
			assert.Empty(t, got)
		})
	}
}

func TestFormatToRollsBack(t *testing.T) {
	t.Parallel()
	var buf textfmt.Buffer[byte]
	_, _ = buf.WriteString("keep:")
	err := textfmt.FormatTo(&buf, "{0}{1:+}", "a", testString{"b"})
	require.Error(t, err)
	assert.Equal(t, "keep:", buf.String())

	require.NoError(t, textfmt.FormatTo(&buf, "{}", "more"))
	assert.Equal(t, "keep:more", buf.String())
}

func TestMustFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { textfmt.MustFormat("{") })
}
