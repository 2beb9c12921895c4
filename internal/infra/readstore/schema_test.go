//go:build unit

package readstore

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The read stores issue raw SQL against the same tables the repositories
// write, so a renamed column only surfaces at runtime. This test parses the
// select list of every read query and checks each referenced column against
// the table definition in the migration file.
func TestReadQueriesMatchSchema(t *testing.T) {
	ddl, err := os.ReadFile("../db/migrations/000001_init.up.sql")
	require.NoError(t, err)

	cases := []struct {
		name  string
		query string
		table string
	}{
		{"booking view", bookingViewQuery, "bookings"},
		{"extension list", extensionListQuery, "extensions"},
		{"invoice list", invoiceListQuery, "invoices"},
		{"history list", historyListQuery, "booking_history"},
		{"timeline list", timelineListQuery, "booking_timeline"},
		{"task board", taskBoardQuery, "tasks"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			columns := tableColumns(t, string(ddl), tc.table)
			selected := selectedColumns(t, tc.query)
			require.NotEmpty(t, selected)
			for _, col := range selected {
				require.Containsf(t, columns, col,
					"query selects %q, which is not a column of %s", col, tc.table)
			}
		})
	}
}

var columnNameRe = regexp.MustCompile(`[a-z_]+`)

func tableColumns(t *testing.T, ddl, table string) map[string]struct{} {
	t.Helper()

	start := strings.Index(ddl, "CREATE TABLE "+table+" (")
	require.NotEqualf(t, -1, start, "table %s not found in migration", table)
	length := strings.Index(ddl[start:], ");")
	require.NotEqual(t, -1, length)

	columns := map[string]struct{}{}
	lines := strings.Split(ddl[start:start+length], "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "CONSTRAINT") {
			continue
		}
		if name := columnNameRe.FindString(line); name != "" {
			columns[name] = struct{}{}
		}
	}
	return columns
}

// selectedColumns returns every identifier between SELECT and FROM. Arithmetic
// select items contribute each of their operand columns.
func selectedColumns(t *testing.T, query string) []string {
	t.Helper()

	sel := strings.Index(query, "SELECT")
	from := strings.Index(query, "FROM")
	require.NotEqual(t, -1, sel)
	require.Greater(t, from, sel)

	return columnNameRe.FindAllString(query[sel+len("SELECT"):from], -1)
}
