package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// AddProject inserts a new project record and returns its id.
// The record is created visible and not featured, at the end of the
// display order.
func (s *Store) AddProject(ctx context.Context, p model.Project) (string, error) {
	if p.Name == "" {
		return "", newValidation("name", "name is required")
	}

	highlights, err := marshalStrings(p.Highlights)
	if err != nil {
		return "", fmt.Errorf("add project: %w", err)
	}
	technologies, err := marshalStrings(p.Technologies)
	if err != nil {
		return "", fmt.Errorf("add project: %w", err)
	}

	id := newID()
	now := formatTime(s.timestamp())

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		order, err := nextOrder(tx, "projects")
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO projects
			(id, name, date, description, highlights, technologies, link,
			 is_featured, is_visible, display_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, 1, ?, ?, ?)
		`, id, p.Name, p.Date, p.Description, highlights, technologies,
			p.Link, order, now, now)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		return s.logActivity(tx, "Added project", "project", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListProjects returns all projects sorted by display order, id-stable.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date, description, highlights, technologies, link,
		       is_featured, is_visible, display_order, created_at, updated_at
		FROM projects
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// UpdateProject applies a partial update to a project.
// Fails with NotFoundError if the id is absent.
func (s *Store) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return newValidation("name", "name cannot be empty")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getProjectTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		highlights, err := marshalStrings(current.Highlights)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		technologies, err := marshalStrings(current.Technologies)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE projects
			SET name = ?, date = ?, description = ?, highlights = ?,
			    technologies = ?, link = ?, is_featured = ?, is_visible = ?,
			    updated_at = ?
			WHERE id = ?
		`, current.Name, current.Date, current.Description, highlights,
			technologies, current.Link, current.Featured, current.Visible,
			formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return s.logActivity(tx, "Updated project", "project", id)
	})
}

// ToggleProjectFeatured flips the featured flag on a project.
func (s *Store) ToggleProjectFeatured(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getProjectTx(tx, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE projects SET is_featured = ?, updated_at = ? WHERE id = ?
		`, !current.Featured, formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("toggle featured: %w", err)
		}
		return s.logActivity(tx, "Updated project", "project", id)
	})
}

// RemoveProject deletes a project record.
func (s *Store) RemoveProject(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "projects", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("project", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return s.logActivity(tx, "Removed project", "project", id)
	})
}

// ReorderProjects atomically rewrites the display order.
// ids must be an exact permutation of the current project ids.
func (s *Store) ReorderProjects(ctx context.Context, ids []string) error {
	return s.reorderCollection(ctx, "projects", "project", "Reordered projects", ids)
}

func getProjectTx(tx *sql.Tx, id string) (model.Project, error) {
	row := tx.QueryRow(`
		SELECT id, name, date, description, highlights, technologies, link,
		       is_featured, is_visible, display_order, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id)
	p, err := scanProject(row)
	if err == errNoRow {
		return model.Project{}, newNotFound("project", id)
	}
	return p, err
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var highlights, technologies, createdAt, updatedAt string
	err := row.Scan(
		&p.ID, &p.Name, &p.Date, &p.Description, &highlights, &technologies,
		&p.Link, &p.Featured, &p.Visible, &p.Order, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Project{}, errNoRow
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("scan project: %w", err)
	}

	if p.Highlights, err = unmarshalStrings(highlights); err != nil {
		return model.Project{}, err
	}
	if p.Technologies, err = unmarshalStrings(technologies); err != nil {
		return model.Project{}, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Project{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Project{}, err
	}

	return p, nil
}
