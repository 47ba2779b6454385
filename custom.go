package textfmt

import "fmt"

// FormatCustom renders v through its hook and appends the result to out,
// truncated to spec's precision and padded to its width. Text is left
// aligned unless the spec says otherwise.
//
// Numeric-only options (=, +, -, space, #, 0) are rejected before the hook
// runs. On any error out is left as it was.
func FormatCustom[C Char](v Streamer, spec Spec, out *Buffer[C]) error {
	if c, ok := spec.NumericOption(); ok {
		return requiresNumeric(c)
	}
	if spec.Type != 0 && spec.Type != 's' {
		return formatErrorf("invalid type specifier '%c' for custom argument", spec.Type)
	}

	var text Buffer[C]
	if err := v.StreamText(&text); err != nil {
		return fmt.Errorf("%w: rendering custom argument: %w", ErrFormat, err)
	}
	writePadded(out, truncate(text.Data(), spec), spec, AlignLeft)
	return nil
}
