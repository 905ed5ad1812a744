package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kmalouki/resumehub/internal/model"
)

// marshalStrings converts a string list to a JSON array for a TEXT column.
// A nil slice is stored as "[]" so columns never hold SQL NULL.
func marshalStrings(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// unmarshalStrings parses a JSON array TEXT column back to a string list.
// Always returns a non-nil slice.
func unmarshalStrings(data string) ([]string, error) {
	if data == "" || data == "[]" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("unmarshal string list: %w", err)
	}
	return list, nil
}

// marshalSpokenLanguages converts spoken languages to a JSON array TEXT column.
func marshalSpokenLanguages(list []model.SpokenLanguage) (string, error) {
	if list == nil {
		list = []model.SpokenLanguage{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("marshal spoken languages: %w", err)
	}
	return string(data), nil
}

// unmarshalSpokenLanguages parses a JSON array TEXT column to spoken languages.
func unmarshalSpokenLanguages(data string) ([]model.SpokenLanguage, error) {
	if data == "" || data == "[]" {
		return []model.SpokenLanguage{}, nil
	}
	var list []model.SpokenLanguage
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("unmarshal spoken languages: %w", err)
	}
	return list, nil
}

// formatTime renders a timestamp for a TEXT column.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses a TEXT column timestamp.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// parseNullTime parses an optional TEXT column timestamp.
// Returns nil for SQL NULL or empty string.
func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
