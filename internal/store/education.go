package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// AddEducation inserts a new education record and returns its id.
// Degree and institution are required.
func (s *Store) AddEducation(ctx context.Context, e model.Education) (string, error) {
	if e.Degree == "" {
		return "", newValidation("degree", "degree is required")
	}
	if e.Institution == "" {
		return "", newValidation("institution", "institution is required")
	}

	id := newID()
	now := formatTime(s.timestamp())

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		order, err := nextOrder(tx, "education")
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO education
			(id, degree, institution, location, start_date, end_date,
			 description, display_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, e.Degree, e.Institution, e.Location, e.StartDate, e.EndDate,
			e.Description, order, now, now)
		if err != nil {
			return fmt.Errorf("insert education: %w", err)
		}
		return s.logActivity(tx, "Added education", "education", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListEducation returns all education entries sorted by display order.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListEducation(ctx context.Context) ([]model.Education, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, degree, institution, location, start_date, end_date,
		       description, display_order, created_at, updated_at
		FROM education
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query education: %w", err)
	}
	defer rows.Close()

	entries := []model.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate education: %w", err)
	}

	return entries, nil
}

// UpdateEducation applies a partial update to an education entry.
func (s *Store) UpdateEducation(ctx context.Context, id string, patch model.EducationPatch) error {
	if patch.Degree != nil && *patch.Degree == "" {
		return newValidation("degree", "degree cannot be empty")
	}
	if patch.Institution != nil && *patch.Institution == "" {
		return newValidation("institution", "institution cannot be empty")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getEducationTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		_, err = tx.ExecContext(ctx, `
			UPDATE education
			SET degree = ?, institution = ?, location = ?, start_date = ?,
			    end_date = ?, description = ?, updated_at = ?
			WHERE id = ?
		`, current.Degree, current.Institution, current.Location,
			current.StartDate, current.EndDate, current.Description,
			formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update education: %w", err)
		}
		return s.logActivity(tx, "Updated education", "education", id)
	})
}

// RemoveEducation deletes an education record.
func (s *Store) RemoveEducation(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "education", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("education", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM education WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete education: %w", err)
		}
		return s.logActivity(tx, "Removed education", "education", id)
	})
}

// ReorderEducation atomically rewrites the display order.
// ids must be an exact permutation of the current education ids.
func (s *Store) ReorderEducation(ctx context.Context, ids []string) error {
	return s.reorderCollection(ctx, "education", "education", "Reordered education", ids)
}

func getEducationTx(tx *sql.Tx, id string) (model.Education, error) {
	row := tx.QueryRow(`
		SELECT id, degree, institution, location, start_date, end_date,
		       description, display_order, created_at, updated_at
		FROM education
		WHERE id = ?
	`, id)
	e, err := scanEducation(row)
	if err == errNoRow {
		return model.Education{}, newNotFound("education", id)
	}
	return e, err
}

func scanEducation(row rowScanner) (model.Education, error) {
	var e model.Education
	var createdAt, updatedAt string
	err := row.Scan(
		&e.ID, &e.Degree, &e.Institution, &e.Location, &e.StartDate,
		&e.EndDate, &e.Description, &e.Order, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Education{}, errNoRow
	}
	if err != nil {
		return model.Education{}, fmt.Errorf("scan education: %w", err)
	}

	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Education{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Education{}, err
	}

	return e, nil
}
