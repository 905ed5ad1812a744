package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// logActivity appends one activity row inside the caller's transaction.
// Every successful mutation calls this exactly once, so the activity log
// is a complete journal of the store's history.
func (s *Store) logActivity(tx *sql.Tx, action, entityType, entityID string) error {
	_, err := tx.Exec(`
		INSERT INTO activity_log (action, entity_type, entity_id, ts)
		VALUES (?, ?, ?, ?)
	`, action, entityType, entityID, formatTime(s.timestamp()))
	if err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// RecentActivity returns the most recent activity entries, newest first.
// A limit <= 0 returns the full log.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	query := `
		SELECT seq, action, entity_type, entity_id, ts
		FROM activity_log
		ORDER BY seq DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	entries := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		var ts string
		if err := rows.Scan(&a.Seq, &a.Action, &a.EntityType, &a.EntityID, &ts); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if a.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	return entries, nil
}

// ActivityCount returns the number of activity log entries.
func (s *Store) ActivityCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM activity_log").Scan(&count); err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return count, nil
}
