package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// seed creates the Profile and Settings singletons plus one default CV
// variant the first time a database is opened. Subsequent opens are no-ops.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile").Scan(&count); err != nil {
		return fmt.Errorf("count profile: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := formatTime(s.timestamp())

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO profile (id, soft_skills, spoken_languages, created_at, updated_at)
			VALUES (?, '[]', '[]', ?, ?)
		`, model.SingletonID, now, now)
		if err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO settings (id, theme_mode, language, default_template, show_photo)
			VALUES (?, ?, ?, ?, 1)
		`, model.SingletonID, string(model.ThemeSystem), string(model.LanguageFrench), string(model.TemplateClassic))
		if err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}

		// One default variant so rendering works before any are created.
		// Empty id sets mean "use all".
		_, err = tx.Exec(`
			INSERT INTO cv_variants (id, name, language, template, is_default, created_at, updated_at)
			VALUES (?, ?, ?, ?, 1, ?, ?)
		`, newID(), "Main CV", string(model.LanguageFrench), string(model.TemplateClassic), now, now)
		if err != nil {
			return fmt.Errorf("seed default variant: %w", err)
		}

		return s.logActivity(tx, "Database initialized", "system", "")
	})
}
