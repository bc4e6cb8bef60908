//go:build unwrapprint_nolocation

package unwrapprint

// reportSkip is unused when location capture is compiled out; it exists so
// reportFailure builds identically under both build modes.
const reportSkip = 0

// callerLocation reports no location when capture is compiled out, which
// drops the "at file:line" segment from diagnostics.
func callerLocation(int) (string, bool) {
	return "", false
}
