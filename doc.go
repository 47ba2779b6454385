// Package textfmt formats values with brace-style replacement fields and
// writes the result to streams of bounded write size.
//
// The central entry points are [Format], [FormatWide], [Fprint] and
// [FprintTo]:
//
//	s, err := textfmt.Format("The date is {0}", date)
//	err = textfmt.Fprint(os.Stdout, "{:>8}|{:<8}|", "right", "left")
//
// # Replacement Fields
//
// A field is {}, {N}, {:spec} or {N:spec}. Automatic and manual indexing may
// not be mixed in one format string. {{ and }} produce literal braces. The
// spec mini-language is
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// where align is one of < > ^ =, sign one of + - space, and width or
// precision may be an integer or an argument reference ({} or {N}). See
// [ParseSpec].
//
// # Custom Values
//
// A type renders itself by implementing [Streamer]. Its text is captured in
// a temporary buffer, cut to the precision and padded to the width:
//
//	func (d Date) StreamText(s textfmt.Sink) error {
//		_, err := fmt.Fprintf(s, "%d-%d-%d", d.Year, d.Month, d.Day)
//		return err
//	}
//
// [fmt.Stringer] and error values are treated the same way. Options that
// only apply to numbers (=, +, -, space, #, 0) fail with a [FormatError]:
//
//	format specifier '+' requires numeric argument
//
// A named integer type without a hook formats as its ordinal value. Use
// [IsCustom] to ask which path a type takes.
//
// # Narrow and Wide Output
//
// [Buffer] is generic over its code unit: Buffer[byte] holds UTF-8,
// Buffer[rune] holds code points. Precision and width count units, so the
// same spec may cut a multi-byte character in narrow mode but not in wide
// mode.
//
// # Bounded Streams
//
// A [RawWriter] reports accepted lengths as a signed type N. [WriteBuffer]
// splits a buffer into chunks of at most [MaxChunk][N]() bytes and issues
// one raw write per chunk, in order. Use [NewRawWriter] to wrap an
// [io.Writer] with a chosen length type.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrFormat]: matched by every [FormatError]
//   - [ErrIO]: matched by every [IOError]
//   - [ErrInvalidWrite]: a raw write reported an impossible count
package textfmt
