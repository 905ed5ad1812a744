package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// AddSkill inserts a new skill record and returns its id.
// The record is created visible. Level must be 1-5.
func (s *Store) AddSkill(ctx context.Context, sk model.Skill) (string, error) {
	if sk.Name == "" {
		return "", newValidation("name", "name is required")
	}
	if !sk.Category.Valid() {
		return "", newValidation("category", fmt.Sprintf("unknown category %q", sk.Category))
	}
	if sk.Level < 1 || sk.Level > 5 {
		return "", newValidation("level", "level must be between 1 and 5")
	}
	if sk.Years < 0 {
		return "", newValidation("yearsOfExperience", "years cannot be negative")
	}

	id := newID()
	now := formatTime(s.timestamp())

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO skills (id, name, category, level, years, is_visible, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		`, id, sk.Name, string(sk.Category), sk.Level, sk.Years, now, now)
		if err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
		return s.logActivity(tx, "Added skill", "skill", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListSkills returns all skills ordered by category then name.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListSkills(ctx context.Context) ([]model.Skill, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, level, years, is_visible, created_at, updated_at
		FROM skills
		ORDER BY category ASC, name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	return skills, nil
}

// ListSkillsByCategory returns skills grouped per category, categories in
// document order.
func (s *Store) ListSkillsByCategory(ctx context.Context) (map[model.SkillCategory][]model.Skill, error) {
	skills, err := s.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[model.SkillCategory][]model.Skill)
	for _, sk := range skills {
		grouped[sk.Category] = append(grouped[sk.Category], sk)
	}
	return grouped, nil
}

// UpdateSkill applies a partial update to a skill.
func (s *Store) UpdateSkill(ctx context.Context, id string, patch model.SkillPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return newValidation("name", "name cannot be empty")
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return newValidation("category", fmt.Sprintf("unknown category %q", *patch.Category))
	}
	if patch.Level != nil && (*patch.Level < 1 || *patch.Level > 5) {
		return newValidation("level", "level must be between 1 and 5")
	}
	if patch.Years != nil && *patch.Years < 0 {
		return newValidation("yearsOfExperience", "years cannot be negative")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getSkillTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		_, err = tx.ExecContext(ctx, `
			UPDATE skills
			SET name = ?, category = ?, level = ?, years = ?, is_visible = ?, updated_at = ?
			WHERE id = ?
		`, current.Name, string(current.Category), current.Level,
			current.Years, current.Visible, formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update skill: %w", err)
		}
		return s.logActivity(tx, "Updated skill", "skill", id)
	})
}

// RemoveSkill deletes a skill record.
func (s *Store) RemoveSkill(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "skills", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("skill", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete skill: %w", err)
		}
		return s.logActivity(tx, "Removed skill", "skill", id)
	})
}

func getSkillTx(tx *sql.Tx, id string) (model.Skill, error) {
	row := tx.QueryRow(`
		SELECT id, name, category, level, years, is_visible, created_at, updated_at
		FROM skills
		WHERE id = ?
	`, id)
	sk, err := scanSkill(row)
	if err == errNoRow {
		return model.Skill{}, newNotFound("skill", id)
	}
	return sk, err
}

func scanSkill(row rowScanner) (model.Skill, error) {
	var sk model.Skill
	var category, createdAt, updatedAt string
	err := row.Scan(&sk.ID, &sk.Name, &category, &sk.Level, &sk.Years,
		&sk.Visible, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.Skill{}, errNoRow
	}
	if err != nil {
		return model.Skill{}, fmt.Errorf("scan skill: %w", err)
	}

	sk.Category = model.SkillCategory(category)
	if sk.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Skill{}, err
	}
	if sk.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Skill{}, err
	}

	return sk, nil
}
