package sinks

import (
	"go.uber.org/zap"

	"github.com/JakeFAU/unwrapprint"
)

// Zap returns a printer that forwards each diagnostic line to logger at
// warn level, putting unwrap failures in the same stream as the
// application's structured logs. A nil logger discards.
func Zap(logger *zap.Logger) unwrapprint.Printer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(text string) {
		logger.Warn("unwrap failure", zap.String("diagnostic", text))
	}
}
