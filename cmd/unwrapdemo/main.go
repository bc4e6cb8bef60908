package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/JakeFAU/unwrapprint"
	"github.com/JakeFAU/unwrapprint/internal/config"
	"github.com/JakeFAU/unwrapprint/internal/logging"
	"github.com/JakeFAU/unwrapprint/sinks"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging.Development, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	logger.Info("demo starting",
		zap.String("run_id", runID.String()),
		zap.String("sink", cfg.Printer.Sink),
	)

	printer, cleanup, err := buildPrinter(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		metrics, merr := sinks.NewMetrics(reg)
		if merr != nil {
			return fmt.Errorf("init metrics: %w", merr)
		}
		next := printer
		if next == nil {
			// Keep diagnostics visible on stdout while counting them.
			next = sinks.Writer(os.Stdout)
		}
		printer = metrics.Printer(next)
	}

	installPrinter(cfg, printer, logger)
	runSamples(logger)

	if reg != nil {
		reportMetrics(reg, logger)
	}

	logger.Info("demo finished", zap.String("run_id", runID.String()))
	return nil
}

// buildPrinter maps the configured sink name to a printer. The returned
// cleanup releases any resource the printer holds open.
func buildPrinter(cfg config.Config, logger *zap.Logger) (unwrapprint.Printer, func(), error) {
	noop := func() {}
	switch cfg.Printer.Sink {
	case config.SinkDefault:
		return nil, noop, nil
	case config.SinkStdout:
		return sinks.Writer(os.Stdout), noop, nil
	case config.SinkFile:
		f, err := os.OpenFile(cfg.Printer.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open sink file: %w", err)
		}
		cleanup := func() {
			// Uninstall the printer before closing its file so a late
			// dispatch cannot write through a closed handle.
			unwrapprint.SetPrinterForce(nil)
			f.Close()
		}
		return sinks.Writer(f), cleanup, nil
	case config.SinkZap:
		return sinks.Zap(logger.Named("unwrap")), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown printer.sink %q", cfg.Printer.Sink)
	}
}

func installPrinter(cfg config.Config, printer unwrapprint.Printer, logger *zap.Logger) {
	if printer == nil {
		logger.Info("using built-in stdout printer")
		return
	}
	if cfg.Printer.Force {
		unwrapprint.SetPrinterForce(printer)
		logger.Info("printer force-installed", zap.String("sink", cfg.Printer.Sink))
		return
	}
	if !unwrapprint.TrySetPrinter(printer) {
		logger.Warn("printer already installed, keeping existing", zap.String("sink", cfg.Printer.Sink))
		return
	}
	logger.Info("printer installed", zap.String("sink", cfg.Printer.Sink))
}

// runSamples exercises the success and failure paths of every unwrap
// helper. Successes stay silent; each failure produces one diagnostic
// through the installed printer.
func runSamples(logger *zap.Logger) {
	n, err := unwrapprint.UnwrapPrint(strconv.Atoi("42"))
	if err == nil {
		logger.Info("parsed cleanly", zap.Int("value", n))
	}

	_, _ = unwrapprint.UnwrapPrint(strconv.Atoi("forty-two"))

	limits := map[string]int{"rps": 50}
	burst, ok := limits["burst"]
	_, _ = unwrapprint.UnwrapPrintOK(burst, ok)

	res := unwrapprint.ResultOf(os.Open("/no/such/file")).UnwrapPrint()
	if f, ferr := res.Get(); ferr == nil {
		f.Close()
	}

	token := unwrapprint.None[string]().UnwrapPrint()
	if errors.Is(token.Error(), unwrapprint.ErrNone) {
		logger.Debug("token absent", zap.Error(token.Error()))
	}
}

func reportMetrics(reg *prometheus.Registry, logger *zap.Logger) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				logger.Info("metric",
					zap.String("name", mf.GetName()),
					zap.Float64("value", c.GetValue()),
				)
			}
		}
	}
}
