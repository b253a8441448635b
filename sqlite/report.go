package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mstolarz/veritext"
)

// Compile-time interface verification.
var _ veritext.ReportService = (*ReportService)(nil)

// ReportService implements veritext.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// HashHTML computes the xxHash of the verified HTML and returns a hex
// string. The hash lets callers tell whether two reports were produced
// from the same page content without storing the page itself.
func HashHTML(html string) string {
	h := xxhash.Sum64String(html)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateReport persists a new report.
func (s *ReportService) CreateReport(ctx context.Context, report *veritext.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()

	matches, err := json.Marshal(report.Result.Matches)
	if err != nil {
		return fmt.Errorf("failed to encode matches: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, file_key, node_id, url, html_hash, total_texts, matched_count, accuracy, passed, matches, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.FileKey, report.NodeID, report.URL, report.HTMLHash,
		report.Result.TotalTexts, report.Result.MatchedCount, report.Result.Accuracy,
		report.Result.Passed, string(matches), report.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*veritext.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_key, node_id, url, html_hash, total_texts, matched_count, accuracy, passed, matches, created_at
		FROM reports
		WHERE id = ?
	`, id)

	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, veritext.Errorf(veritext.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter veritext.ReportFilter) ([]*veritext.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, file_key, node_id, url, html_hash, total_texts, matched_count, accuracy, passed, matches, created_at FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.FileKey != nil {
		query.WriteString(" AND file_key = ?")
		args = append(args, *filter.FileKey)
	}
	if filter.NodeID != nil {
		query.WriteString(" AND node_id = ?")
		args = append(args, *filter.NodeID)
	}
	if filter.Passed != nil {
		query.WriteString(" AND passed = ?")
		args = append(args, *filter.Passed)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*veritext.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return veritext.Errorf(veritext.ENOTFOUND, "report not found")
	}

	return nil
}

// scanReport reads one report row using the given scan function.
func scanReport(scan func(dest ...any) error) (*veritext.Report, error) {
	var report veritext.Report
	var matches, createdAt string

	if err := scan(&report.ID, &report.FileKey, &report.NodeID, &report.URL, &report.HTMLHash,
		&report.Result.TotalTexts, &report.Result.MatchedCount, &report.Result.Accuracy,
		&report.Result.Passed, &matches, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(matches), &report.Result.Matches); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}

	var err error
	report.CreatedAt, err = scanTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &report, nil
}
