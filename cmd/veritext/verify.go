package main

import (
	"encoding/json"
	"fmt"

	"github.com/mstolarz/veritext"
	"github.com/mstolarz/veritext/sqlite"
	"golang.org/x/sync/errgroup"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	// The node tree and the page are independent inputs; fetch both
	// concurrently.
	var root *veritext.DesignNode
	var html string

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var err error
		root, err = deps.Source.Node(ctx, c.FileKey, c.NodeID)
		return err
	})
	g.Go(func() error {
		var err error
		html, err = deps.Fetcher.Fetch(ctx, c.URL)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", veritext.ErrorMessage(err))
		return err
	}

	result := deps.Verifier.Verify(root, html)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if c.Save {
		report := &veritext.Report{
			FileKey:  c.FileKey,
			NodeID:   c.NodeID,
			URL:      c.URL,
			HTMLHash: sqlite.HashHTML(html),
			Result:   *result,
		}
		if err := deps.Reports.CreateReport(deps.Ctx, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", veritext.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved report %s\n", report.ID)
	}

	// A failing verdict fails the command so CI pipelines can gate on it.
	if !result.Passed {
		return fmt.Errorf("verification failed: %d of %d texts matched", result.MatchedCount, result.TotalTexts)
	}

	return nil
}
