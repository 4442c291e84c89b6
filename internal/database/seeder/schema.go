package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hiring-intel/internal/database"
)

// EnsureTableColumns fails when table lacks any of columns, naming all of
// the missing ones.
func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return errNilDB
	}
	if table == "" || len(columns) == 0 {
		return errors.New("table and columns are required")
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: %s is missing %s", table, strings.Join(missing, ", "))
	}
	return nil
}
