package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mstolarz/veritext"
)

// Ensure LoggingNodeSource implements veritext.NodeSource.
var _ veritext.NodeSource = (*LoggingNodeSource)(nil)

// LoggingNodeSource wraps a NodeSource with logging of tree size and latency.
type LoggingNodeSource struct {
	next   veritext.NodeSource
	logger *slog.Logger
}

// NewLoggingNodeSource creates a new LoggingNodeSource.
func NewLoggingNodeSource(next veritext.NodeSource, logger *slog.Logger) *LoggingNodeSource {
	return &LoggingNodeSource{next: next, logger: logger}
}

// Node delegates to the wrapped source and logs the outcome.
func (s *LoggingNodeSource) Node(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error) {
	begin := time.Now()
	node, err := s.next.Node(ctx, fileKey, nodeID)
	if err != nil {
		s.logger.Error("node fetch",
			"file_key", fileKey,
			"node_id", nodeID,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}

	s.logger.Info("node fetch",
		"file_key", fileKey,
		"node_id", nodeID,
		"texts", len(veritext.CollectText(node)),
		"duration", time.Since(begin),
	)
	return node, nil
}
