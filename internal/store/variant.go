package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// CreateVariant inserts a new CV variant and returns its id.
// New variants are never default; promotion goes through SetDefaultVariant.
// Empty id-reference sets mean "use all" for that collection. Referenced
// ids are not checked against the entity collections: a variant may
// reference ids that never existed or were since deleted.
func (s *Store) CreateVariant(ctx context.Context, v model.CVVariant) (string, error) {
	if v.Name == "" {
		return "", newValidation("name", "name is required")
	}
	if !v.Language.Valid() {
		return "", newValidation("language", fmt.Sprintf("unknown language %q", v.Language))
	}
	if !v.Template.Valid() {
		return "", newValidation("template", fmt.Sprintf("unknown template %q", v.Template))
	}

	columns, err := marshalVariantIDSets(v)
	if err != nil {
		return "", fmt.Errorf("create variant: %w", err)
	}

	id := newID()
	now := formatTime(s.timestamp())

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cv_variants
			(id, name, language, template, experience_ids, project_ids,
			 skill_ids, education_ids, certification_ids, accent_color,
			 is_default, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		`, id, v.Name, string(v.Language), string(v.Template),
			columns.experiences, columns.projects, columns.skills,
			columns.education, columns.certifications, v.AccentColor, now, now)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
		return s.logActivity(tx, "Created CV variant", "cvVariant", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetVariant returns a single variant by id.
func (s *Store) GetVariant(ctx context.Context, id string) (model.CVVariant, error) {
	row := s.db.QueryRowContext(ctx, selectVariant+" WHERE id = ?", id)
	v, err := scanVariant(row)
	if err == errNoRow {
		return model.CVVariant{}, newNotFound("cvVariant", id)
	}
	return v, err
}

// DefaultVariant returns the variant with is_default set.
func (s *Store) DefaultVariant(ctx context.Context) (model.CVVariant, error) {
	row := s.db.QueryRowContext(ctx, selectVariant+" WHERE is_default = 1")
	v, err := scanVariant(row)
	if err == errNoRow {
		return model.CVVariant{}, newNotFound("cvVariant", "default")
	}
	return v, err
}

// ListVariants returns all variants, default first, then by creation.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListVariants(ctx context.Context) ([]model.CVVariant, error) {
	rows, err := s.db.QueryContext(ctx, selectVariant+" ORDER BY is_default DESC, created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	variants := []model.CVVariant{}
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}

	return variants, nil
}

// UpdateVariant applies a partial update to a variant. The default flag is
// not patchable here; use SetDefaultVariant.
func (s *Store) UpdateVariant(ctx context.Context, id string, patch model.VariantPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return newValidation("name", "name cannot be empty")
	}
	if patch.Language != nil && !patch.Language.Valid() {
		return newValidation("language", fmt.Sprintf("unknown language %q", *patch.Language))
	}
	if patch.Template != nil && !patch.Template.Valid() {
		return newValidation("template", fmt.Sprintf("unknown template %q", *patch.Template))
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getVariantTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		columns, err := marshalVariantIDSets(current)
		if err != nil {
			return fmt.Errorf("update variant: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE cv_variants
			SET name = ?, language = ?, template = ?, experience_ids = ?,
			    project_ids = ?, skill_ids = ?, education_ids = ?,
			    certification_ids = ?, accent_color = ?, updated_at = ?
			WHERE id = ?
		`, current.Name, string(current.Language), string(current.Template),
			columns.experiences, columns.projects, columns.skills,
			columns.education, columns.certifications, current.AccentColor,
			formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update variant: %w", err)
		}
		return s.logActivity(tx, "Updated CV variant", "cvVariant", id)
	})
}

// SetDefaultVariant promotes a variant to default, demoting the previous
// default in the same transaction so exactly one default exists at every
// commit point. Promoting the current default is a no-op but still logged.
func (s *Store) SetDefaultVariant(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getVariantTx(tx, id)
		if err != nil {
			return err
		}

		if !current.Default {
			now := formatTime(s.timestamp())
			if _, err := tx.ExecContext(ctx, `
				UPDATE cv_variants SET is_default = 0, updated_at = ? WHERE is_default = 1
			`, now); err != nil {
				return fmt.Errorf("demote default variant: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				UPDATE cv_variants SET is_default = 1, updated_at = ? WHERE id = ?
			`, now, id); err != nil {
				return fmt.Errorf("promote default variant: %w", err)
			}
		}

		return s.logActivity(tx, "Set default CV variant", "cvVariant", id)
	})
}

// DeleteVariant removes a variant. Deleting the default variant is an
// InvariantViolation: the collection stays unchanged and the error is
// surfaced to the caller.
func (s *Store) DeleteVariant(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getVariantTx(tx, id)
		if err != nil {
			return err
		}
		if current.Default {
			return &InvariantViolation{Message: "cannot delete default CV variant"}
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM cv_variants WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete variant: %w", err)
		}
		return s.logActivity(tx, "Removed CV variant", "cvVariant", id)
	})
}

// MarkExported stamps last_exported_at with the current time. The write is
// idempotent and safe to retry; nothing else on the record changes.
func (s *Store) MarkExported(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "cv_variants", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("cvVariant", id)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE cv_variants SET last_exported_at = ? WHERE id = ?
		`, formatTime(s.timestamp()), id); err != nil {
			return fmt.Errorf("mark exported: %w", err)
		}
		return s.logActivity(tx, "Exported CV", "cvVariant", id)
	})
}

const selectVariant = `
	SELECT id, name, language, template, experience_ids, project_ids,
	       skill_ids, education_ids, certification_ids, accent_color,
	       is_default, created_at, updated_at, last_exported_at
	FROM cv_variants`

type variantIDColumns struct {
	experiences    string
	projects       string
	skills         string
	education      string
	certifications string
}

func marshalVariantIDSets(v model.CVVariant) (variantIDColumns, error) {
	var cols variantIDColumns
	var err error
	if cols.experiences, err = marshalStrings(v.ExperienceIDs); err != nil {
		return cols, err
	}
	if cols.projects, err = marshalStrings(v.ProjectIDs); err != nil {
		return cols, err
	}
	if cols.skills, err = marshalStrings(v.SkillIDs); err != nil {
		return cols, err
	}
	if cols.education, err = marshalStrings(v.EducationIDs); err != nil {
		return cols, err
	}
	if cols.certifications, err = marshalStrings(v.CertificationIDs); err != nil {
		return cols, err
	}
	return cols, nil
}

func getVariantTx(tx *sql.Tx, id string) (model.CVVariant, error) {
	row := tx.QueryRow(selectVariant+" WHERE id = ?", id)
	v, err := scanVariant(row)
	if err == errNoRow {
		return model.CVVariant{}, newNotFound("cvVariant", id)
	}
	return v, err
}

func scanVariant(row rowScanner) (model.CVVariant, error) {
	var v model.CVVariant
	var language, template string
	var experiences, projects, skills, education, certifications string
	var createdAt, updatedAt string
	var lastExported sql.NullString

	err := row.Scan(
		&v.ID, &v.Name, &language, &template,
		&experiences, &projects, &skills, &education, &certifications,
		&v.AccentColor, &v.Default, &createdAt, &updatedAt, &lastExported,
	)
	if err == sql.ErrNoRows {
		return model.CVVariant{}, errNoRow
	}
	if err != nil {
		return model.CVVariant{}, fmt.Errorf("scan variant: %w", err)
	}

	v.Language = model.Language(language)
	v.Template = model.Template(template)
	if v.ExperienceIDs, err = unmarshalStrings(experiences); err != nil {
		return model.CVVariant{}, err
	}
	if v.ProjectIDs, err = unmarshalStrings(projects); err != nil {
		return model.CVVariant{}, err
	}
	if v.SkillIDs, err = unmarshalStrings(skills); err != nil {
		return model.CVVariant{}, err
	}
	if v.EducationIDs, err = unmarshalStrings(education); err != nil {
		return model.CVVariant{}, err
	}
	if v.CertificationIDs, err = unmarshalStrings(certifications); err != nil {
		return model.CVVariant{}, err
	}
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.CVVariant{}, err
	}
	if v.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.CVVariant{}, err
	}
	if v.LastExportedAt, err = parseNullTime(lastExported); err != nil {
		return model.CVVariant{}, err
	}

	return v, nil
}
