package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
	Bare   bool
}

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	exportOpts := &ExportOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "export [variant-id]",
		Short: "Export a composed CV as a JSON document",
		Long: `Compose a variant (the default one when no id is given) and write
it as a portable JSON document. The document carries an _metadata
envelope unless --bare is set; a bare document can still be imported.

The variant's last-exported timestamp is updated on success.

Examples:
  resumehub export --out cv.json
  resumehub export 0198a7c2-... --bare`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(exportOpts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&exportOpts.Output, "out", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&exportOpts.Bare, "bare", false, "omit the _metadata envelope")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := composeSnapshot(ctx, st, args)
	if err != nil {
		return err
	}

	doc := export.BuildDocument(snap)
	data, err := export.Marshal(doc, !opts.Bare, time.Now().UTC())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode document", err)
	}

	if opts.Output == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return WrapExitError(ExitCommandError, "failed to write document", err)
		}
	} else {
		if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
			return WrapExitError(ExitCommandError, "failed to write document", err)
		}
	}

	if err := st.MarkExported(ctx, snap.Variant.ID); err != nil {
		return wrapStoreError("failed to record export", err)
	}
	slog.Info("exported CV", "variant", snap.Variant.ID, "out", opts.Output)

	if opts.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", snap.Variant.Name, opts.Output)
	}
	return nil
}
