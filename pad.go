package textfmt

// truncate cuts text to the spec's precision. The cut counts units, so a
// narrow buffer may end mid-rune.
func truncate[C Char](text []C, spec Spec) []C {
	if spec.HasPrecision && spec.Precision < len(text) {
		return text[:spec.Precision]
	}
	return text
}

// writePadded appends text to out, filled to spec.Width. def is used when
// the spec carries no alignment.
func writePadded[C Char](out *Buffer[C], text []C, spec Spec, def Alignment) {
	pad := spec.Width - len(text)
	if pad <= 0 {
		out.Append(text...)
		return
	}
	fill := spec.Fill
	if fill == 0 {
		fill = ' '
	}
	align := spec.Align
	if align == AlignDefault {
		align = def
	}
	switch align {
	case AlignRight, AlignNumeric:
		out.appendFill(fill, pad)
		out.Append(text...)
	case AlignCenter:
		left := pad / 2
		out.appendFill(fill, left)
		out.Append(text...)
		out.appendFill(fill, pad-left)
	default:
		out.Append(text...)
		out.appendFill(fill, pad)
	}
}
