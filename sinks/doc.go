// Package sinks provides ready-made printers for the unwrapprint slot:
// io.Writer serialization, zap forwarding, Prometheus counting, Postgres
// persistence, and Pub/Sub fanout, plus an in-memory Capture printer for
// tests.
//
// The slot holds a single printer. Sinks that decorate another printer,
// such as the Prometheus counter, still occupy one slot:
//
//	metrics, _ := sinks.NewMetrics(nil)
//	unwrapprint.TrySetPrinter(metrics.Printer(sinks.Writer(os.Stderr)))
package sinks
