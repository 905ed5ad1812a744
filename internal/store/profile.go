package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// GetProfile returns the Profile singleton.
func (s *Store) GetProfile(ctx context.Context) (model.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, title, email, phone, address, github, linkedin,
		       portfolio, profile_image, soft_skills, spoken_languages,
		       created_at, updated_at
		FROM profile
		WHERE id = ?
	`, model.SingletonID)

	var p model.Profile
	var softSkills, spokenLanguages, createdAt, updatedAt string
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Email, &p.Phone, &p.Address,
		&p.GitHub, &p.LinkedIn, &p.Portfolio, &p.ProfileImage,
		&softSkills, &spokenLanguages, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, newNotFound("profile", model.SingletonID)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("query profile: %w", err)
	}

	if p.SoftSkills, err = unmarshalStrings(softSkills); err != nil {
		return model.Profile{}, err
	}
	if p.SpokenLanguages, err = unmarshalSpokenLanguages(spokenLanguages); err != nil {
		return model.Profile{}, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Profile{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Profile{}, err
	}

	return p, nil
}

// UpdateProfile applies a partial update to the Profile singleton and
// refreshes updated_at.
func (s *Store) UpdateProfile(ctx context.Context, patch model.ProfilePatch) error {
	if patch.SpokenLanguages != nil {
		for i, lang := range *patch.SpokenLanguages {
			if lang.Name == "" {
				return newValidation(fmt.Sprintf("spokenLanguages[%d].name", i), "name is required")
			}
			if !lang.Level.Valid() {
				return newValidation(fmt.Sprintf("spokenLanguages[%d].level", i), fmt.Sprintf("unknown level %q", lang.Level))
			}
		}
	}

	current, err := s.GetProfile(ctx)
	if err != nil {
		return err
	}
	patch.Apply(&current)

	softSkills, err := marshalStrings(current.SoftSkills)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	spokenLanguages, err := marshalSpokenLanguages(current.SpokenLanguages)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			UPDATE profile
			SET name = ?, title = ?, email = ?, phone = ?, address = ?,
			    github = ?, linkedin = ?, portfolio = ?, profile_image = ?,
			    soft_skills = ?, spoken_languages = ?, updated_at = ?
			WHERE id = ?
		`,
			current.Name, current.Title, current.Email, current.Phone,
			current.Address, current.GitHub, current.LinkedIn,
			current.Portfolio, current.ProfileImage,
			softSkills, spokenLanguages,
			formatTime(s.timestamp()), model.SingletonID,
		)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return s.logActivity(tx, "Updated profile", "profile", model.SingletonID)
	})
}
