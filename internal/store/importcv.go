package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// ImportBundle is the store-side shape of a parsed CV import document.
// Record ids, orders and timestamps on the contained entities are ignored;
// the store assigns fresh ones on apply.
type ImportBundle struct {
	Profile        model.ProfilePatch
	Skills         []model.Skill
	Experiences    []model.Experience
	Education      []model.Education
	Projects       []model.Project
	Certifications []model.Certification
}

// ImportCV replaces the CV data set with the bundle's contents in one
// transaction: profile fields are patched, and the skills, experiences,
// education, projects and certifications collections are cleared and
// refilled in bundle order. Settings, variants and prior activity entries
// are untouched. Exactly one activity entry records the import.
//
// Validation runs before any row changes, so a bad bundle leaves the
// store exactly as it was.
func (s *Store) ImportCV(ctx context.Context, bundle ImportBundle) error {
	if bundle.Profile.SpokenLanguages != nil {
		for i, lang := range *bundle.Profile.SpokenLanguages {
			if lang.Name == "" {
				return newValidation(fmt.Sprintf("languages[%d].name", i), "name is required")
			}
			if !lang.Level.Valid() {
				return newValidation(fmt.Sprintf("languages[%d].level", i), fmt.Sprintf("unknown level %q", lang.Level))
			}
		}
	}
	for i, sk := range bundle.Skills {
		if sk.Name == "" {
			return newValidation(fmt.Sprintf("skills[%d].name", i), "name is required")
		}
		if !sk.Category.Valid() {
			return newValidation(fmt.Sprintf("skills[%d].category", i), fmt.Sprintf("unknown category %q", sk.Category))
		}
	}
	for i, e := range bundle.Experiences {
		if e.Role == "" || e.Company == "" {
			return newValidation(fmt.Sprintf("experience[%d]", i), "role and company are required")
		}
	}
	for i, e := range bundle.Education {
		if e.Degree == "" || e.Institution == "" {
			return newValidation(fmt.Sprintf("education[%d]", i), "degree and institution are required")
		}
	}
	for i, p := range bundle.Projects {
		if p.Name == "" {
			return newValidation(fmt.Sprintf("projects[%d].name", i), "name is required")
		}
	}
	for i, c := range bundle.Certifications {
		if c.Name == "" {
			return newValidation(fmt.Sprintf("certifications[%d].name", i), "name is required")
		}
	}

	now := formatTime(s.timestamp())

	return s.withTx(ctx, func(tx *sql.Tx) error {
		profile, err := getProfileTx(tx)
		if err != nil {
			return err
		}
		bundle.Profile.Apply(&profile)
		if err := writeProfileTx(tx, profile, now); err != nil {
			return err
		}

		for _, table := range []string{"skills", "experiences", "education", "projects", "certifications"} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, sk := range bundle.Skills {
			level := sk.Level
			if level < 1 || level > 5 {
				level = 3
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO skills (id, name, category, level, years, is_visible, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, 1, ?, ?)
			`, newID(), sk.Name, string(sk.Category), level, sk.Years, now, now)
			if err != nil {
				return fmt.Errorf("import skill: %w", err)
			}
		}

		for i, e := range bundle.Experiences {
			tasks, err := marshalStrings(e.Tasks)
			if err != nil {
				return fmt.Errorf("import experience: %w", err)
			}
			technologies, err := marshalStrings(e.Technologies)
			if err != nil {
				return fmt.Errorf("import experience: %w", err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO experiences
				(id, role, company, location, start_date, end_date, tasks, technologies,
				 is_visible, display_order, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?, ?)
			`, newID(), e.Role, e.Company, e.Location, e.StartDate, e.EndDate,
				tasks, technologies, i, now, now)
			if err != nil {
				return fmt.Errorf("import experience: %w", err)
			}
		}

		for i, e := range bundle.Education {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO education
				(id, degree, institution, location, start_date, end_date,
				 description, display_order, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, newID(), e.Degree, e.Institution, e.Location, e.StartDate,
				e.EndDate, e.Description, i, now, now)
			if err != nil {
				return fmt.Errorf("import education: %w", err)
			}
		}

		for i, p := range bundle.Projects {
			highlights, err := marshalStrings(p.Highlights)
			if err != nil {
				return fmt.Errorf("import project: %w", err)
			}
			technologies, err := marshalStrings(p.Technologies)
			if err != nil {
				return fmt.Errorf("import project: %w", err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO projects
				(id, name, date, description, highlights, technologies, link,
				 is_featured, is_visible, display_order, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?, ?)
			`, newID(), p.Name, p.Date, p.Description, highlights,
				technologies, p.Link, p.Featured, i, now, now)
			if err != nil {
				return fmt.Errorf("import project: %w", err)
			}
		}

		for _, c := range bundle.Certifications {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO certifications (id, name, issuer, date, link, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, newID(), c.Name, c.Issuer, c.Date, c.Link, now, now)
			if err != nil {
				return fmt.Errorf("import certification: %w", err)
			}
		}

		return s.logActivity(tx, "Imported CV data", "system", "")
	})
}

func getProfileTx(tx *sql.Tx) (model.Profile, error) {
	row := tx.QueryRow(`
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
	if err == sql.ErrNoRows {
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

func writeProfileTx(tx *sql.Tx, p model.Profile, now string) error {
	softSkills, err := marshalStrings(p.SoftSkills)
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	spokenLanguages, err := marshalSpokenLanguages(p.SpokenLanguages)
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	_, err = tx.Exec(`
		UPDATE profile
		SET name = ?, title = ?, email = ?, phone = ?, address = ?,
		    github = ?, linkedin = ?, portfolio = ?, profile_image = ?,
		    soft_skills = ?, spoken_languages = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Title, p.Email, p.Phone, p.Address, p.GitHub, p.LinkedIn,
		p.Portfolio, p.ProfileImage, softSkills, spokenLanguages, now, model.SingletonID)
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
