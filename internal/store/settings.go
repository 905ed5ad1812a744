package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// GetSettings returns the Settings singleton.
func (s *Store) GetSettings(ctx context.Context) (model.Settings, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, theme_mode, language, default_template, show_photo
		FROM settings
		WHERE id = ?
	`, model.SingletonID)

	var set model.Settings
	var theme, language, template string
	err := row.Scan(&set.ID, &theme, &language, &template, &set.ShowPhoto)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{}, newNotFound("settings", model.SingletonID)
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("query settings: %w", err)
	}

	set.ThemeMode = model.ThemeMode(theme)
	set.Language = model.Language(language)
	set.DefaultTemplate = model.Template(template)
	return set, nil
}

// UpdateSettings applies a partial update to the Settings singleton.
func (s *Store) UpdateSettings(ctx context.Context, patch model.SettingsPatch) error {
	if patch.ThemeMode != nil && !patch.ThemeMode.Valid() {
		return newValidation("themeMode", fmt.Sprintf("unknown theme mode %q", *patch.ThemeMode))
	}
	if patch.Language != nil && !patch.Language.Valid() {
		return newValidation("language", fmt.Sprintf("unknown language %q", *patch.Language))
	}
	if patch.DefaultTemplate != nil && !patch.DefaultTemplate.Valid() {
		return newValidation("defaultTemplateId", fmt.Sprintf("unknown template %q", *patch.DefaultTemplate))
	}

	current, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	patch.Apply(&current)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE settings
			SET theme_mode = ?, language = ?, default_template = ?, show_photo = ?
			WHERE id = ?
		`, string(current.ThemeMode), string(current.Language),
			string(current.DefaultTemplate), current.ShowPhoto, model.SingletonID)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return s.logActivity(tx, "Updated settings", "settings", "")
	})
}
