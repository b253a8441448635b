package main

import (
	"context"
	"io"
	"time"

	"github.com/mstolarz/veritext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source   veritext.NodeSource
	Fetcher  veritext.Fetcher
	Verifier veritext.TextVerifier
	Reports  veritext.ReportService
	Comparer veritext.ImageComparer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log progress to stderr"`

	Verify  VerifyCmd  `cmd:"" help:"Verify design text against a rendered page"`
	Reports ReportsCmd `cmd:"" help:"List saved verification reports"`
	SSIM    SSIMCmd    `cmd:"" name:"ssim" help:"Compute pixel similarity between two images"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	FileKey string `arg:"" help:"Figma file key"`
	NodeID  string `arg:"" help:"Figma node ID (e.g. 1:2)"`
	URL     string `arg:"" help:"URL of the HTML rendering to verify"`

	Token   string        `env:"FIGMA_TOKEN" required:"" help:"Figma personal access token"`
	Browser bool          `short:"b" help:"Render the page in a headless browser before extracting text"`
	Depth   int           `short:"d" default:"0" help:"Limit node tree depth (0 = full tree)"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Save    bool          `short:"s" help:"Persist the verdict to the report database"`
}

// ReportsCmd is the "reports" subcommand.
type ReportsCmd struct {
	FileKey string `help:"Filter by Figma file key"`
	Failed  bool   `help:"Show only failed verifications"`
	Limit   int    `default:"20" help:"Maximum number of reports to show"`
}

// SSIMCmd is the "ssim" subcommand.
type SSIMCmd struct {
	ImageA string `arg:"" help:"First image file"`
	ImageB string `arg:"" help:"Second image file"`

	Resize bool `help:"Resize to matching dimensions instead of cropping"`
}
