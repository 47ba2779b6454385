package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bjaus/textfmt"
)

var _ Command = (*FormatCommand)(nil)

// FormatCommand formats its arguments and prints the result followed by a
// newline through a stream whose length type is int32.
type FormatCommand struct {
	*SharedOptions

	// Format is the format string.
	Format string

	// Args are the raw argument words.
	Args []string

	// Wide formats in wide mode, counting code points instead of bytes.
	Wide bool

	values []any
}

// NewFormatCommand creates a FormatCommand sharing opts.
func NewFormatCommand(opts *SharedOptions) *FormatCommand {
	return &FormatCommand{SharedOptions: opts}
}

// AddFlags registers the format flags.
func (c *FormatCommand) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Wide, "wide", false, "Format in wide mode (width and precision count code points)")
}

// Complete parses the argument words.
func (c *FormatCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return err
	}
	values, err := ParseArgs(c.Args)
	if err != nil {
		return err
	}
	c.values = values
	return nil
}

// Validate checks the options.
func (c *FormatCommand) Validate() error {
	return c.SharedOptions.Validate()
}

// Run formats and writes the result.
func (c *FormatCommand) Run(_ context.Context) error {
	c.Log.WithFields(logrus.Fields{
		"format": c.Format,
		"args":   len(c.values),
		"wide":   c.Wide,
	}).Debug("formatting")

	out := textfmt.NewRawWriter[int32](c.IO.Out)
	if !c.Wide {
		return textfmt.FprintTo(out, c.Format+"\n", c.values...)
	}
	text, err := textfmt.FormatWide(c.Format, c.values...)
	if err != nil {
		return err
	}
	return textfmt.FprintTo(out, "{}\n", string(text))
}
