//go:build !unwrapprint_nolocation

package unwrapprint

import (
	"runtime"
	"strconv"
)

// reportSkip is the number of frames between the runtime.Caller call inside
// callerLocation and the user's call site: callerLocation itself,
// reportFailure, and the exported unwrap helper.
const reportSkip = 3

// callerLocation resolves the user call site as "file:line". The Go
// runtime exposes no column information, so locations carry file and line
// only.
func callerLocation(skip int) (string, bool) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", false
	}
	return file + ":" + strconv.Itoa(line), true
}
