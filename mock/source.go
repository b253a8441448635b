package mock

import (
	"context"

	"github.com/mstolarz/veritext"
)

var _ veritext.NodeSource = (*NodeSource)(nil)

// NodeSource is a mock implementation of veritext.NodeSource.
type NodeSource struct {
	NodeFn func(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error)
}

func (s *NodeSource) Node(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error) {
	return s.NodeFn(ctx, fileKey, nodeID)
}

var _ veritext.ImageExporter = (*ImageExporter)(nil)

// ImageExporter is a mock implementation of veritext.ImageExporter.
type ImageExporter struct {
	ExportImageFn func(ctx context.Context, fileKey, nodeID string) (string, error)
}

func (e *ImageExporter) ExportImage(ctx context.Context, fileKey, nodeID string) (string, error) {
	return e.ExportImageFn(ctx, fileKey, nodeID)
}
