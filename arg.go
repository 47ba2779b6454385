package textfmt

import (
	"fmt"
	"reflect"
)

// Streamer is implemented by values that render their own text. StreamText
// must write the complete rendering to s before returning; it is free to
// write in several pieces (e.g. "2012", "-", "12", "-", "9").
//
// The sink may be narrow or wide; an implementation should not depend on
// which.
type Streamer interface {
	StreamText(s Sink) error
}

// StreamerFunc adapts a function to a [Streamer].
type StreamerFunc func(s Sink) error

// StreamText calls f(s).
func (f StreamerFunc) StreamText(s Sink) error { return f(s) }

type stringerStreamer struct{ v fmt.Stringer }

func (s stringerStreamer) StreamText(sink Sink) error {
	_, err := sink.WriteString(s.v.String())
	return err
}

type errorStreamer struct{ v error }

func (s errorStreamer) StreamText(sink Sink) error {
	_, err := sink.WriteString(s.v.Error())
	return err
}

type printStreamer struct{ v any }

func (s printStreamer) StreamText(sink Sink) error {
	_, err := fmt.Fprint(sink, s.v)
	return err
}

// Kind classifies an [Arg].
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindCustom
)

var kindNames = [...]string{"none", "int", "uint", "float", "bool", "string", "custom"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Numeric reports whether k accepts numeric-only spec options.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindUint || k == KindFloat
}

// Arg is a tagged formatting argument.
type Arg struct {
	kind   Kind
	i      int64
	u      uint64
	f      float64
	b      bool
	s      string
	custom Streamer
}

// Kind returns the kind of a.
func (a Arg) Kind() Kind { return a.kind }

// MakeArg classifies v. A [Streamer] always wins, so a named integer type
// that implements it formats through its hook; one that does not falls back
// to its ordinal value. A nil pointer formats as "<nil>" without running
// its hook.
func MakeArg(v any) Arg {
	if isNilPointer(v) {
		return Arg{kind: KindNone}
	}
	switch x := v.(type) {
	case nil:
		return Arg{kind: KindNone}
	case Streamer:
		return Arg{kind: KindCustom, custom: x}
	case int:
		return Arg{kind: KindInt, i: int64(x)}
	case int8:
		return Arg{kind: KindInt, i: int64(x)}
	case int16:
		return Arg{kind: KindInt, i: int64(x)}
	case int32:
		return Arg{kind: KindInt, i: int64(x)}
	case int64:
		return Arg{kind: KindInt, i: x}
	case uint:
		return Arg{kind: KindUint, u: uint64(x)}
	case uint8:
		return Arg{kind: KindUint, u: uint64(x)}
	case uint16:
		return Arg{kind: KindUint, u: uint64(x)}
	case uint32:
		return Arg{kind: KindUint, u: uint64(x)}
	case uint64:
		return Arg{kind: KindUint, u: x}
	case uintptr:
		return Arg{kind: KindUint, u: uint64(x)}
	case float32:
		return Arg{kind: KindFloat, f: float64(x)}
	case float64:
		return Arg{kind: KindFloat, f: x}
	case bool:
		return Arg{kind: KindBool, b: x}
	case string:
		return Arg{kind: KindString, s: x}
	case []byte:
		return Arg{kind: KindString, s: string(x)}
	case fmt.Stringer:
		return Arg{kind: KindCustom, custom: stringerStreamer{x}}
	case error:
		return Arg{kind: KindCustom, custom: errorStreamer{x}}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Arg{kind: KindInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Arg{kind: KindUint, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return Arg{kind: KindFloat, f: rv.Float()}
	case reflect.Bool:
		return Arg{kind: KindBool, b: rv.Bool()}
	case reflect.String:
		return Arg{kind: KindString, s: rv.String()}
	default:
		return Arg{kind: KindCustom, custom: printStreamer{v}}
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// IsCustom reports whether values of type T format through their own
// rendering hook ([Streamer], [fmt.Stringer] or error) rather than the
// built-in paths. It is decided by T alone:
//
//	if textfmt.IsCustom[Weekday]() { ... }
func IsCustom[T any]() bool {
	t := reflect.TypeFor[T]()
	for _, hook := range hookTypes {
		if t.Implements(hook) {
			return true
		}
	}
	return false
}

var hookTypes = []reflect.Type{
	reflect.TypeFor[Streamer](),
	reflect.TypeFor[fmt.Stringer](),
	reflect.TypeFor[error](),
}

// Visitor receives an [Arg] according to its kind.
type Visitor[R any] interface {
	VisitNone() R
	VisitInt(v int64) R
	VisitUint(v uint64) R
	VisitFloat(v float64) R
	VisitBool(v bool) R
	VisitString(v string) R
	VisitCustom(v Streamer) R
}

// Visit dispatches a to the method of v matching its kind.
func Visit[R any](v Visitor[R], a Arg) R {
	switch a.kind {
	case KindInt:
		return v.VisitInt(a.i)
	case KindUint:
		return v.VisitUint(a.u)
	case KindFloat:
		return v.VisitFloat(a.f)
	case KindBool:
		return v.VisitBool(a.b)
	case KindString:
		return v.VisitString(a.s)
	case KindCustom:
		return v.VisitCustom(a.custom)
	default:
		return v.VisitNone()
	}
}

// intValue returns a as an int for width and precision arguments.
func (a Arg) intValue() (int64, bool) {
	switch a.kind {
	case KindInt:
		return a.i, true
	case KindUint:
		if a.u > 1<<63-1 {
			return 0, false
		}
		return int64(a.u), true
	default:
		return 0, false
	}
}
