package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalouki/resumehub/internal/store"
)

func TestOutputFormatter_SuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Success(map[string]string{"id": "abc"})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", data["id"])
}

func TestOutputFormatter_SuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Success("3 experiences"))
	assert.Equal(t, "3 experiences\n", buf.String())
}

func TestOutputFormatter_ErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error("not_found", "experience not found", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "experience not found", resp.Error.Message)
}

func TestOutputFormatter_ErrorTextVerboseDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf, Verbose: true}

	require.NoError(t, f.Error("validation", "level out of range", "level must be 1-5"))
	assert.Contains(t, buf.String(), "Error [validation]: level out of range")
	assert.Contains(t, buf.String(), "Details: level must be 1-5")
}

func TestExitError(t *testing.T) {
	base := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "failed to write export", base)

	assert.Equal(t, "failed to write export: disk full", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	bare := NewExitError(ExitFailure, "variant is the default")
	assert.Equal(t, "variant is the default", bare.Error())
	assert.Equal(t, ExitFailure, GetExitCode(bare))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
}

func TestGetExitCode_WrappedExitError(t *testing.T) {
	inner := NewExitError(ExitCommandError, "cannot open database")
	wrapped := fmt.Errorf("init: %w", inner)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestWrapStoreError_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &store.ValidationError{Field: "level", Message: "out of range"}, ExitFailure},
		{"not found", &store.NotFoundError{Collection: "experiences", ID: "x"}, ExitFailure},
		{"invariant", &store.InvariantViolation{Message: "cannot delete default variant"}, ExitFailure},
		{"infrastructure", errors.New("database is locked"), ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapStoreError("operation failed", tt.err)
			assert.Equal(t, tt.code, wrapped.Code)
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}
}
