package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mstolarz/veritext"
	"github.com/mstolarz/veritext/figma"
	verihttp "github.com/mstolarz/veritext/http"
	"github.com/mstolarz/veritext/rod"
	verislog "github.com/mstolarz/veritext/slog"
	"github.com/mstolarz/veritext/sqlite"
	"github.com/mstolarz/veritext/ssim"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the report service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("veritext"),
		kong.Description("Verify that design text survives conversion to HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'veritext --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Dispatch on the parsed command, not the raw arguments: global
	// flags may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire command-specific dependencies based on command.
	if cmd == "verify" {
		source := figma.NewClient(cli.Verify.Token, figma.WithDepth(cli.Verify.Depth))
		deps.Source = verislog.NewLoggingNodeSource(source, logger)

		var fetcher veritext.Fetcher
		if cli.Verify.Browser {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Verify.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = verihttp.NewFetcher(verihttp.WithTimeout(cli.Verify.Timeout))
		}
		deps.Fetcher = verislog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

		deps.Verifier = verislog.NewLoggingVerifier(&veritext.Verifier{}, logger)
	}

	if cmd == "ssim" {
		var opts []ssim.Option
		if cli.SSIM.Resize {
			opts = append(opts, ssim.WithResizeToMatch())
		}
		deps.Comparer = ssim.NewComparer(opts...)
	}

	// The reports command and verify --save need the database.
	if cmd == "reports" || (cmd == "verify" && cli.Verify.Save) {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set VERITEXT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Reports = sqlite.NewReportService(m.DB)
	}

	return kongCtx.Run(deps)
}

// defaultDBPath returns the report database location: $VERITEXT_DB if
// set, otherwise ~/.veritext/veritext.db.
func defaultDBPath() string {
	if path := os.Getenv("VERITEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "veritext.db"
	}
	return filepath.Join(home, ".veritext", "veritext.db")
}
