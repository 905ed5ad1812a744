package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/export"
)

// NewImportCommand creates the import command.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CV JSON document, replacing current data",
		Long: `Import a CV JSON document produced by export (with or without the
_metadata envelope). The profile is updated and the skill, experience,
education, project and certification collections are replaced wholesale
in one transaction. CV variants and settings are untouched.

A document missing personalInfo, skills or experience is rejected and
the database is left unchanged.

Example:
  resumehub import cv.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd, args[0])
		},
	}

	return cmd
}

func runImport(opts *RootOptions, cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read document", err)
	}

	doc, err := export.Parse(data)
	if err != nil {
		var formatErr *export.ImportFormatError
		if errors.As(err, &formatErr) {
			return WrapExitError(ExitFailure, "invalid document", err)
		}
		return WrapExitError(ExitCommandError, "failed to parse document", err)
	}

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := export.Apply(cmd.Context(), st, doc); err != nil {
		return wrapStoreError("failed to import document", err)
	}
	slog.Info("imported CV data", "file", path)

	return formatter(opts, cmd).Success("CV data imported")
}
