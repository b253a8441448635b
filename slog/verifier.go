package slog

import (
	"log/slog"
	"time"

	"github.com/mstolarz/veritext"
)

// Ensure LoggingVerifier implements veritext.TextVerifier.
var _ veritext.TextVerifier = (*LoggingVerifier)(nil)

// LoggingVerifier wraps a TextVerifier with logging of the verdict.
type LoggingVerifier struct {
	next   veritext.TextVerifier
	logger *slog.Logger
}

// NewLoggingVerifier creates a new LoggingVerifier.
func NewLoggingVerifier(next veritext.TextVerifier, logger *slog.Logger) *LoggingVerifier {
	return &LoggingVerifier{next: next, logger: logger}
}

// Verify delegates to the wrapped verifier and logs the verdict summary.
func (v *LoggingVerifier) Verify(root *veritext.DesignNode, html string) *veritext.VerificationResult {
	begin := time.Now()
	result := v.next.Verify(root, html)

	v.logger.Info("verify",
		"total", result.TotalTexts,
		"matched", result.MatchedCount,
		"accuracy", result.Accuracy,
		"passed", result.Passed,
		"duration", time.Since(begin),
	)
	return result
}
