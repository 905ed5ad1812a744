package store

import (
	"context"
	"database/sql"
	"fmt"
)

// reorderCollection atomically rewrites display_order for every id in the
// collection to its position in ids.
//
// The id list must be an exact permutation of the collection's current ids:
// no missing ids, no foreign ids, no duplicates. Partial reorders are
// rejected with ValidationError before any row changes.
func (s *Store) reorderCollection(ctx context.Context, table, entityType, action string, ids []string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, fmt.Sprintf("SELECT id FROM %s", table))
		if err != nil {
			return fmt.Errorf("query %s ids: %w", table, err)
		}
		existing := make(map[string]bool)
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("scan %s id: %w", table, err)
			}
			existing[id] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterate %s ids: %w", table, err)
		}
		rows.Close()

		if len(ids) != len(existing) {
			return newValidation("ids", fmt.Sprintf("expected %d ids, got %d", len(existing), len(ids)))
		}
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return newValidation("ids", fmt.Sprintf("duplicate id %q", id))
			}
			seen[id] = true
			if !existing[id] {
				return newValidation("ids", fmt.Sprintf("unknown id %q", id))
			}
		}

		now := formatTime(s.timestamp())
		for i, id := range ids {
			_, err := tx.ExecContext(ctx, fmt.Sprintf(`
				UPDATE %s SET display_order = ?, updated_at = ? WHERE id = ?
			`, table), i, now, id)
			if err != nil {
				return fmt.Errorf("reorder %s: %w", table, err)
			}
		}

		return s.logActivity(tx, action, entityType, "")
	})
}

// nextOrder returns the next display_order index for an orderable table,
// read inside the caller's transaction.
func nextOrder(tx *sql.Tx, table string) (int, error) {
	var count int
	if err := tx.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// exists reports whether a row with the given id is present in table,
// checked inside the caller's transaction.
func exists(tx *sql.Tx, table, id string) (bool, error) {
	var count int
	err := tx.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", table), id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check %s id: %w", table, err)
	}
	return count > 0, nil
}
