package sqlite

import (
	"strings"
	"time"

	"github.com/mstolarz/veritext"
)

// scanTime converts a stored RFC3339 timestamp column back to time.Time.
// Reports are only written by this package, so a malformed value means
// the database was edited outside of it.
func scanTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, veritext.Errorf(veritext.EINTERNAL, "invalid %s timestamp: %v", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses to a report query.
// Zero values mean unbounded.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
