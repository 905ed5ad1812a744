package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// AddExperience inserts a new experience record and returns its id.
// ID, display order and timestamps are assigned by the store; the record
// is created visible and takes the next position in display order.
func (s *Store) AddExperience(ctx context.Context, e model.Experience) (string, error) {
	if e.Role == "" {
		return "", newValidation("role", "role is required")
	}
	if e.Company == "" {
		return "", newValidation("company", "company is required")
	}

	tasks, err := marshalStrings(e.Tasks)
	if err != nil {
		return "", fmt.Errorf("add experience: %w", err)
	}
	technologies, err := marshalStrings(e.Technologies)
	if err != nil {
		return "", fmt.Errorf("add experience: %w", err)
	}

	id := newID()
	now := formatTime(s.timestamp())

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		order, err := nextOrder(tx, "experiences")
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO experiences
			(id, role, company, location, start_date, end_date, tasks, technologies,
			 is_visible, display_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?, ?)
		`, id, e.Role, e.Company, e.Location, e.StartDate, e.EndDate,
			tasks, technologies, order, now, now)
		if err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
		return s.logActivity(tx, "Added experience", "experience", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListExperiences returns all experiences sorted by display order.
// Ties break on id so the sort is stable across reads.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role, company, location, start_date, end_date, tasks,
		       technologies, is_visible, display_order, created_at, updated_at
		FROM experiences
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query experiences: %w", err)
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}

	return experiences, nil
}

// UpdateExperience applies a partial update to an experience.
// Fails with NotFoundError if the id is absent.
func (s *Store) UpdateExperience(ctx context.Context, id string, patch model.ExperiencePatch) error {
	if patch.Role != nil && *patch.Role == "" {
		return newValidation("role", "role cannot be empty")
	}
	if patch.Company != nil && *patch.Company == "" {
		return newValidation("company", "company cannot be empty")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getExperienceTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		tasks, err := marshalStrings(current.Tasks)
		if err != nil {
			return fmt.Errorf("update experience: %w", err)
		}
		technologies, err := marshalStrings(current.Technologies)
		if err != nil {
			return fmt.Errorf("update experience: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE experiences
			SET role = ?, company = ?, location = ?, start_date = ?, end_date = ?,
			    tasks = ?, technologies = ?, is_visible = ?, updated_at = ?
			WHERE id = ?
		`, current.Role, current.Company, current.Location,
			current.StartDate, current.EndDate, tasks, technologies,
			current.Visible, formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update experience: %w", err)
		}
		return s.logActivity(tx, "Updated experience", "experience", id)
	})
}

// RemoveExperience deletes an experience record.
// Variants referencing it keep the dangling id; the composer skips it.
func (s *Store) RemoveExperience(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "experiences", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("experience", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM experiences WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete experience: %w", err)
		}
		return s.logActivity(tx, "Removed experience", "experience", id)
	})
}

// ReorderExperiences atomically rewrites the display order.
// ids must be an exact permutation of the current experience ids.
func (s *Store) ReorderExperiences(ctx context.Context, ids []string) error {
	return s.reorderCollection(ctx, "experiences", "experience", "Reordered experiences", ids)
}

func getExperienceTx(tx *sql.Tx, id string) (model.Experience, error) {
	row := tx.QueryRow(`
		SELECT id, role, company, location, start_date, end_date, tasks,
		       technologies, is_visible, display_order, created_at, updated_at
		FROM experiences
		WHERE id = ?
	`, id)
	e, err := scanExperience(row)
	if err == errNoRow {
		return model.Experience{}, newNotFound("experience", id)
	}
	return e, err
}

func scanExperience(row rowScanner) (model.Experience, error) {
	var e model.Experience
	var tasks, technologies, createdAt, updatedAt string
	err := row.Scan(
		&e.ID, &e.Role, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&tasks, &technologies, &e.Visible, &e.Order, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Experience{}, errNoRow
	}
	if err != nil {
		return model.Experience{}, fmt.Errorf("scan experience: %w", err)
	}

	if e.Tasks, err = unmarshalStrings(tasks); err != nil {
		return model.Experience{}, err
	}
	if e.Technologies, err = unmarshalStrings(technologies); err != nil {
		return model.Experience{}, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Experience{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Experience{}, err
	}

	return e, nil
}
