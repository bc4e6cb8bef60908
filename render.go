package unwrapprint

import "strconv"

// noneText is the stable token reported when an optional value is absent.
// It is emitted verbatim, without quoting.
const noneText = "Option::None"

// renderError quotes the failure message so a diagnostic stays on one line
// no matter how the error formats itself.
func renderError(err error) string {
	if err == nil {
		return "<nil>"
	}
	return strconv.Quote(err.Error())
}

// reportFailure assembles the diagnostic line for one failure and hands it
// to Dispatch. rendered is either a quoted failure message or noneText.
//
// Every exported unwrap helper calls reportFailure directly; reportSkip
// counts on that fixed depth to resolve the user call site.
func reportFailure(rendered string) {
	if loc, ok := callerLocation(reportSkip); ok {
		Dispatch("Error at " + loc + ": " + rendered)
		return
	}
	Dispatch("Error: " + rendered)
}
