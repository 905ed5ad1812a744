package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create and seed the database",
		Long: `Create the SQLite database if it does not exist, apply the schema,
and seed the starter records: an empty profile, default settings and a
"Main CV" default variant.

Running init against an existing database is harmless; seeded data is
never overwritten.

Example:
  resumehub init --db ./resumehub.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, cmd)
		},
	}

	return cmd
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(ctx)
	if err != nil {
		return wrapStoreError("failed to read stats", err)
	}
	slog.Info("database ready", "path", opts.Database)

	out := formatter(opts, cmd)
	if opts.Format == "json" {
		return out.Success(stats)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database ready: %s\n", opts.Database)
	fmt.Fprintf(cmd.OutOrStdout(), "Variants: %d\n", stats.Variants)
	return nil
}
