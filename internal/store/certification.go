package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// AddCertification inserts a new certification record and returns its id.
// Name and issuer are required.
func (s *Store) AddCertification(ctx context.Context, c model.Certification) (string, error) {
	if c.Name == "" {
		return "", newValidation("name", "name is required")
	}
	if c.Issuer == "" {
		return "", newValidation("issuer", "issuer is required")
	}

	id := newID()
	now := formatTime(s.timestamp())

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO certifications (id, name, issuer, date, link, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, c.Name, c.Issuer, c.Date, c.Link, now, now)
		if err != nil {
			return fmt.Errorf("insert certification: %w", err)
		}
		return s.logActivity(tx, "Added certification", "certification", id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListCertifications returns all certifications ordered by name.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListCertifications(ctx context.Context) ([]model.Certification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, issuer, date, link, created_at, updated_at
		FROM certifications
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query certifications: %w", err)
	}
	defer rows.Close()

	certs := []model.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certifications: %w", err)
	}

	return certs, nil
}

// UpdateCertification applies a partial update to a certification.
func (s *Store) UpdateCertification(ctx context.Context, id string, patch model.CertificationPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return newValidation("name", "name cannot be empty")
	}
	if patch.Issuer != nil && *patch.Issuer == "" {
		return newValidation("issuer", "issuer cannot be empty")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getCertificationTx(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)

		_, err = tx.ExecContext(ctx, `
			UPDATE certifications
			SET name = ?, issuer = ?, date = ?, link = ?, updated_at = ?
			WHERE id = ?
		`, current.Name, current.Issuer, current.Date, current.Link,
			formatTime(s.timestamp()), id)
		if err != nil {
			return fmt.Errorf("update certification: %w", err)
		}
		return s.logActivity(tx, "Updated certification", "certification", id)
	})
}

// RemoveCertification deletes a certification record.
func (s *Store) RemoveCertification(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(tx, "certifications", id)
		if err != nil {
			return err
		}
		if !ok {
			return newNotFound("certification", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM certifications WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete certification: %w", err)
		}
		return s.logActivity(tx, "Removed certification", "certification", id)
	})
}

func getCertificationTx(tx *sql.Tx, id string) (model.Certification, error) {
	row := tx.QueryRow(`
		SELECT id, name, issuer, date, link, created_at, updated_at
		FROM certifications
		WHERE id = ?
	`, id)
	c, err := scanCertification(row)
	if err == errNoRow {
		return model.Certification{}, newNotFound("certification", id)
	}
	return c, err
}

func scanCertification(row rowScanner) (model.Certification, error) {
	var c model.Certification
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.Date, &c.Link, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.Certification{}, errNoRow
	}
	if err != nil {
		return model.Certification{}, fmt.Errorf("scan certification: %w", err)
	}

	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Certification{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Certification{}, err
	}

	return c, nil
}
