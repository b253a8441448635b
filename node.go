package veritext

import "context"

// Node type discriminants used by the Figma nodes API. Only NodeTypeText
// carries a text payload; the rest are structural containers.
const (
	NodeTypeText      = "TEXT"
	NodeTypeFrame     = "FRAME"
	NodeTypeGroup     = "GROUP"
	NodeTypeComponent = "COMPONENT"
	NodeTypeInstance  = "INSTANCE"
)

// DesignNode is one node of the design-source tree. It is produced
// upstream (e.g., by the figma package) and consumed read-only.
type DesignNode struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`

	// Characters is the text payload. It is meaningful only when Type
	// is NodeTypeText.
	Characters string `json:"characters,omitempty"`

	Children []*DesignNode `json:"children,omitempty"`
}

// CollectText walks the design tree and returns the text payload of every
// text node, in pre-order document order (a node before its children,
// children left to right). Nodes of other types are traversed but never
// contribute text, even if they carry a stray Characters value. Empty
// payloads are skipped.
//
// The walk uses an explicit stack so pathologically deep trees cannot
// exhaust the call stack.
func CollectText(root *DesignNode) []string {
	if root == nil {
		return nil
	}

	var texts []string
	stack := []*DesignNode{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}

		if n.Type == NodeTypeText && n.Characters != "" {
			texts = append(texts, n.Characters)
		}

		// Push children in reverse so the leftmost child is visited first.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}

	return texts
}

// NodeSource produces design node trees.
// Implementations hide how the tree is acquired (REST API, file on disk).
type NodeSource interface {
	// Node retrieves the node tree rooted at nodeID within the given file.
	// Returns ENOTFOUND if the node does not exist in the file.
	Node(ctx context.Context, fileKey, nodeID string) (*DesignNode, error)
}

// ImageExporter renders design nodes to images.
type ImageExporter interface {
	// ExportImage renders the node to an image and returns a URL the
	// rendered image can be downloaded from.
	ExportImage(ctx context.Context, fileKey, nodeID string) (string, error)
}
