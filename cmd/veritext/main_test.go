package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/mstolarz/veritext/cmd/veritext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error when no command specified", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "verify")
	})

	t.Run("wires dependencies when a global flag precedes the command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "veritext.db")
		err := m.Run(context.Background(), []string{"-v", "reports"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No reports found")
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

		require.Error(t, err)
	})
}
