package cli

import (
	"context"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/bjaus/textfmt"
	"github.com/bjaus/textfmt/internal/render"
)

var _ Command = (*ExplainCommand)(nil)

var alignNames = map[textfmt.Alignment]string{
	textfmt.AlignDefault: "default",
	textfmt.AlignLeft:    "left",
	textfmt.AlignRight:   "right",
	textfmt.AlignCenter:  "center",
	textfmt.AlignNumeric: "numeric",
}

var signNames = map[textfmt.Sign]string{
	textfmt.SignNone:  "default",
	textfmt.SignPlus:  "plus",
	textfmt.SignMinus: "minus",
	textfmt.SignSpace: "space",
}

// SpecField is one option of a parsed format spec.
type SpecField struct {
	Option      string `json:"option" yaml:"option"`
	Value       string `json:"value" yaml:"value"`
	NumericOnly bool   `json:"numericOnly" yaml:"numericOnly"`

	styles []func(string) string
}

func (f SpecField) Row() []string {
	numeric := "no"
	if f.NumericOnly {
		numeric = "yes"
	}
	return []string{f.Option, f.Value, numeric}
}

func (f SpecField) Header() []string {
	return []string{"OPTION", "VALUE", "NUMERIC ONLY"}
}

func (f SpecField) Styles() []func(string) string {
	return f.styles
}

// ExplainFields lists every option of s in mini-language order.
func ExplainFields(s textfmt.Spec) []SpecField {
	return []SpecField{
		{Option: "fill", Value: strconv.QuoteRune(s.Fill)},
		{Option: "align", Value: alignNames[s.Align], NumericOnly: s.Align == textfmt.AlignNumeric},
		{Option: "sign", Value: signNames[s.Sign], NumericOnly: s.Sign != textfmt.SignNone},
		{Option: "alternate", Value: strconv.FormatBool(s.Alt), NumericOnly: s.Alt},
		{Option: "zero", Value: strconv.FormatBool(s.Zero), NumericOnly: s.Zero},
		{Option: "width", Value: refText(s.Width, s.WidthArg, s.Width > 0)},
		{Option: "precision", Value: refText(s.Precision, s.PrecisionArg, s.HasPrecision)},
		{Option: "type", Value: typeText(s.Type)},
	}
}

func refText(n, arg int, set bool) string {
	switch {
	case arg >= 0:
		return "{" + strconv.Itoa(arg) + "}"
	case arg < -1:
		return "{}"
	case set:
		return strconv.Itoa(n)
	default:
		return "none"
	}
}

func typeText(t rune) string {
	if t == 0 {
		return "default"
	}
	return string(t)
}

// ExplainCommand parses a format spec and renders its options.
type ExplainCommand struct {
	*SharedOptions

	// Spec is the text after the ':' of a replacement field.
	Spec string

	parsed textfmt.Spec
}

// NewExplainCommand creates an ExplainCommand sharing opts.
func NewExplainCommand(opts *SharedOptions) *ExplainCommand {
	return &ExplainCommand{SharedOptions: opts}
}

// AddFlags registers no extra flags; explain only uses the shared ones.
func (c *ExplainCommand) AddFlags(*pflag.FlagSet) {}

// Complete parses the spec.
func (c *ExplainCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return err
	}
	parsed, err := textfmt.ParseSpec(c.Spec)
	if err != nil {
		return err
	}
	c.parsed = parsed
	return nil
}

// Validate checks the options.
func (c *ExplainCommand) Validate() error {
	return c.SharedOptions.Validate()
}

// Run renders the parsed spec.
func (c *ExplainCommand) Run(_ context.Context) error {
	option, numeric := c.parsed.NumericOption()
	entry := c.Log.WithField("spec", c.parsed.String())
	if numeric {
		entry = entry.WithField("numericOption", string(option))
	}
	entry.Debug("explaining")

	bold := c.paint(color.Bold)
	warn := c.paint(color.FgYellow)
	styles := []func(string) string{
		func(s string) string { return bold.Sprint(s) },
		nil,
		func(s string) string { return warn.Sprint(s) },
	}

	fields := ExplainFields(c.parsed)
	for i := range fields {
		fields[i].styles = styles
	}
	return render.Write(c.IO.Out, c.format(), fields...)
}
