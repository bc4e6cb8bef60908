package unwrapprint

// Result carries either a success value or a failure error, folding the
// native (T, error) pair into a single value that can flow through
// channels, maps, and method chains. The zero Result is Ok with the zero
// value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure. Err(nil) is indistinguishable from Ok of the zero
// value, matching the native convention that a nil error means success.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf packs a native (value, error) pair, typically straight off a
// call:
//
//	r := unwrapprint.ResultOf(strconv.Atoi(s))
func ResultOf[T any](v T, err error) Result[T] {
	return Result[T]{value: v, err: err}
}

// IsOk reports whether the result carries a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result carries a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get unpacks the result back into a native (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the failure, or nil for an Ok result.
func (r Result[T]) Error() error {
	return r.err
}

// UnwrapOr returns the success value, or def when the result is a failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapPrint returns the receiver unchanged, emitting one diagnostic
// through the installed printer when it carries a failure. Chaining is the
// intended use:
//
//	n := unwrapprint.ResultOf(strconv.Atoi(s)).UnwrapPrint().UnwrapOr(0)
func (r Result[T]) UnwrapPrint() Result[T] {
	if r.err == nil {
		return r
	}
	reportFailure(renderError(r.err))
	return r
}
