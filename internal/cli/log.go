package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Limit int
}

// NewLogCommand creates the log command.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	logOpts := &LogOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent activity, newest first",
		Long: `Show the activity log. Every mutation appends one entry; entries are
never rewritten.

Example:
  resumehub log --limit 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(logOpts.RootOptions)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.RecentActivity(cmd.Context(), logOpts.Limit)
			if err != nil {
				return wrapStoreError("failed to read activity log", err)
			}

			if logOpts.Format == "json" {
				return formatter(logOpts.RootOptions, cmd).Success(entries)
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "(no activity)")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(w, "%s  %-13s %s\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"), entry.EntityType, entry.Action)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&logOpts.Limit, "limit", 50, "maximum entries to show (0 for all)")

	return cmd
}
