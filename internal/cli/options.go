package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bjaus/textfmt/internal/render"
)

// EnvOutput names the environment variable holding the default output format.
const EnvOutput = "TEXTFMT_OUTPUT"

// OutputFormat is the --output flag value. It accepts any format known to
// the render package, case-insensitively.
type OutputFormat string

func (f *OutputFormat) String() string {
	return string(*f)
}

// Set implements the pflag.Value interface for OutputFormat.
func (f *OutputFormat) Set(v string) error {
	parsed, err := render.ParseFormat(v)
	if err != nil {
		return fmt.Errorf("invalid format: %s (must be one of %v)", v, render.Formats())
	}
	*f = OutputFormat(parsed)
	return nil
}

// Type returns the type name for the flag value.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

// Validate checks that f names a supported format.
func (f OutputFormat) Validate() error {
	if _, err := render.ParseFormat(string(f)); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	return nil
}

// outputFromEnv returns the default output format. An unusable value is
// kept as is so Validate reports it.
func outputFromEnv(getenv func(string) string) OutputFormat {
	v := getenv(EnvOutput)
	if v == "" {
		return OutputFormat(render.Table)
	}
	var f OutputFormat
	if err := f.Set(v); err != nil {
		return OutputFormat(v)
	}
	return f
}

// SharedOptions contains options common to all subcommands.
type SharedOptions struct {
	IO IOStreams

	// OutputFormat selects how explain and chunks render their results.
	OutputFormat OutputFormat

	// Verbose enables debug logging on the error stream.
	Verbose bool

	// NoColor disables colored output.
	NoColor bool

	// Log is populated during Complete.
	Log *logrus.Logger
}

// NewSharedOptions creates SharedOptions with defaults taken from the
// environment.
func NewSharedOptions(streams IOStreams) *SharedOptions {
	return &SharedOptions{
		IO:           streams,
		OutputFormat: outputFromEnv(os.Getenv),
	}
}

// AddFlags registers the shared flags, normally as persistent flags of the
// root command.
func (o *SharedOptions) AddFlags(fs *pflag.FlagSet) {
	fs.VarP(&o.OutputFormat, "output", "o", "Output format (table|json|yaml|csv|plain)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug details to stderr")
	fs.BoolVar(&o.NoColor, "no-color", false, "Disable colored output")
}

// Complete sets up the logger.
func (o *SharedOptions) Complete() error {
	if o.Log != nil {
		return nil
	}
	log := logrus.New()
	log.SetOutput(o.IO.ErrOut)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    o.NoColor,
	})
	log.SetLevel(logrus.WarnLevel)
	if o.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	o.Log = log
	return nil
}

// Validate checks the shared options.
func (o *SharedOptions) Validate() error {
	return o.OutputFormat.Validate()
}

// paint returns a color for decorating output, honoring --no-color.
func (o *SharedOptions) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if o.NoColor {
		c.DisableColor()
	}
	return c
}

// format returns the validated render format.
func (o *SharedOptions) format() render.Format {
	f, _ := render.ParseFormat(string(o.OutputFormat))
	return f
}
