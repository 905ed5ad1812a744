package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/compose"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show record counts and profile completion",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			profile, err := st.GetProfile(ctx)
			if err != nil {
				return wrapStoreError("failed to read profile", err)
			}
			stats.Completion = compose.Completeness(profile, stats)

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(stats)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Profile completion: %d%%\n", stats.Completion)
			fmt.Fprintf(w, "Experiences:    %d\n", stats.Experiences)
			fmt.Fprintf(w, "Projects:       %d\n", stats.Projects)
			fmt.Fprintf(w, "Skills:         %d\n", stats.Skills)
			fmt.Fprintf(w, "Education:      %d\n", stats.Education)
			fmt.Fprintf(w, "Certifications: %d\n", stats.Certifications)
			fmt.Fprintf(w, "Variants:       %d\n", stats.Variants)
			return nil
		},
	}

	return cmd
}
