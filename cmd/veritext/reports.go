package main

import (
	"fmt"
	"time"

	"github.com/mstolarz/veritext"
)

// Run executes the reports command.
func (c *ReportsCmd) Run(deps *Dependencies) error {
	filter := veritext.ReportFilter{Limit: c.Limit}
	if c.FileKey != "" {
		filter.FileKey = &c.FileKey
	}
	if c.Failed {
		passed := false
		filter.Passed = &passed
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", veritext.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'veritext verify --save' to create one.")
		return nil
	}

	for _, r := range reports {
		verdict := "FAIL"
		if r.Result.Passed {
			verdict = "PASS"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s/%s  %d/%d (%.1f%%)  %s  %s\n",
			r.ID, verdict, r.FileKey, r.NodeID,
			r.Result.MatchedCount, r.Result.TotalTexts, r.Result.Accuracy*100,
			r.URL, r.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
