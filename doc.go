// Package unwrapprint provides ergonomics for extracting values from
// fallible and optional results while reporting failures through a single
// process-wide printer.
//
// The free functions UnwrapPrint and UnwrapPrintOK, and the equivalent
// methods on Result and Option, hand their input back untouched; on the
// failure path they additionally emit a one-line diagnostic such as
//
//	Error at /src/service/lookup.go:42: "boom"
//
// through whichever printer is installed at that moment. With no printer
// installed the line goes to standard output. Embedding applications
// install their own printer early in startup with TrySetPrinter; the sinks
// subpackage ships ready-made printers for io.Writer, zap, Prometheus
// counting, Postgres, and Pub/Sub backends.
//
// Building with -tags unwrapprint_nolocation compiles call-site capture
// out, shortening diagnostics to "Error: ...".
package unwrapprint
