package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mstolarz/veritext"
	"github.com/mstolarz/veritext/mock"
	verislog "github.com/mstolarz/veritext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingVerifier_Verify(t *testing.T) {
	t.Parallel()

	t.Run("logs verdict summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextVerifier{
			VerifyFn: func(root *veritext.DesignNode, html string) *veritext.VerificationResult {
				return &veritext.VerificationResult{
					TotalTexts:   4,
					MatchedCount: 3,
					Accuracy:     0.75,
					Passed:       false,
				}
			},
		}

		verifier := verislog.NewLoggingVerifier(inner, logger)
		result := verifier.Verify(nil, "<html></html>")

		assert.Equal(t, 3, result.MatchedCount)
		output := buf.String()
		assert.Contains(t, output, "verify")
		assert.Contains(t, output, "total=4")
		assert.Contains(t, output, "matched=3")
		assert.Contains(t, output, "accuracy=0.75")
		assert.Contains(t, output, "passed=false")
		assert.Contains(t, output, "duration=")
	})
}

func TestLoggingNodeSource_Node(t *testing.T) {
	t.Parallel()

	t.Run("logs text count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.NodeSource{
			NodeFn: func(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error) {
				return &veritext.DesignNode{
					Type:       veritext.NodeTypeText,
					Characters: "Hello",
				}, nil
			},
		}

		source := verislog.NewLoggingNodeSource(inner, logger)
		node, err := source.Node(context.Background(), "filekey", "1:2")

		require.NoError(t, err)
		assert.Equal(t, "Hello", node.Characters)
		output := buf.String()
		assert.Contains(t, output, "node fetch")
		assert.Contains(t, output, "file_key=filekey")
		assert.Contains(t, output, "node_id=1:2")
		assert.Contains(t, output, "texts=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.NodeSource{
			NodeFn: func(ctx context.Context, fileKey, nodeID string) (*veritext.DesignNode, error) {
				return nil, veritext.Errorf(veritext.ENOTFOUND, "node %q not found", nodeID)
			},
		}

		source := verislog.NewLoggingNodeSource(inner, logger)
		_, err := source.Node(context.Background(), "filekey", "9:9")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "node fetch")
		assert.Contains(t, buf.String(), "err=")
	})
}
