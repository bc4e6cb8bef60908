package unwrapprint

import "errors"

// ErrNone is the unit failure marker for an absent optional value. Both
// Option.UnwrapPrint and UnwrapPrintOK return it, so callers can test for
// absence with errors.Is.
var ErrNone = errors.New("unwrapprint: no value present")

// Option carries a value that may be absent. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf packs a native comma-ok pair, such as a map lookup:
//
//	opt := unwrapprint.OptionOf(cache[key])
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Option[T]{value: v, some: true}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get unpacks the option back into a native comma-ok pair.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the value, or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapPrint converts the option into a Result. A present value becomes
// Ok; absence emits the Option::None diagnostic through the installed
// printer and becomes Err carrying ErrNone.
func (o Option[T]) UnwrapPrint() Result[T] {
	if o.some {
		return Ok(o.value)
	}
	reportFailure(noneText)
	return Err[T](ErrNone)
}
