package unwrapprint

// UnwrapPrint returns v and err exactly as given. When err is non-nil it
// first emits a one-line diagnostic through the installed printer; the
// error value itself is never wrapped or replaced, so errors.Is and
// errors.As behave the same with or without the call:
//
//	f, err := unwrapprint.UnwrapPrint(os.Open(path))
func UnwrapPrint[T any](v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	reportFailure(renderError(err))
	return v, err
}

// UnwrapPrintOK adapts the comma-ok form, such as a map index or type
// assertion. When ok is false it emits the absence diagnostic and returns
// the zero value of T together with ErrNone; otherwise it returns v with a
// nil error and no side effect.
func UnwrapPrintOK[T any](v T, ok bool) (T, error) {
	if ok {
		return v, nil
	}
	reportFailure(noneText)
	var zero T
	return zero, ErrNone
}
