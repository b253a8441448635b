package veritext

import (
	"context"
	"time"
)

// Report is a persisted verification run: which design node was checked
// against which page, a hash of the HTML that was verified, and the
// verdict itself.
type Report struct {
	ID       string `json:"id"`
	FileKey  string `json:"fileKey"`
	NodeID   string `json:"nodeId"`
	URL      string `json:"url"`
	HTMLHash string `json:"htmlHash"`

	Result VerificationResult `json:"result"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.FileKey == "" {
		return Errorf(EINVALID, "report file key required")
	}
	if r.NodeID == "" {
		return Errorf(EINVALID, "report node ID required")
	}
	return nil
}

// ReportService represents a service for managing verification reports.
type ReportService interface {
	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID      *string `json:"id"`
	FileKey *string `json:"fileKey"`
	NodeID  *string `json:"nodeId"`
	Passed  *bool   `json:"passed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
