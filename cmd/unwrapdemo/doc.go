// Package main implements unwrapdemo, a small binary exercising the
// unwrapprint registry end to end.
//
// The demo loads configuration via Viper (config file plus UNWRAPDEMO_*
// environment variables), builds a zap logger, installs the configured
// printer into the global slot, and then runs a handful of fallible
// operations whose failures surface as one-line diagnostics.
//
// Configuration keys:
//
//	logging.development  bool   console encoder with colored levels (default true)
//	logging.level        string minimum log level (default "info")
//	printer.sink         string one of default, stdout, file, zap (default "stdout")
//	printer.path         string target file when printer.sink is "file"
//	printer.force        bool   replace an already-installed printer (default false)
//	metrics.enabled      bool   count diagnostics through Prometheus collectors (default false)
//
// Run it with:
//
//	unwrapdemo -config config.yaml
package main
