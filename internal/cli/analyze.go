package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/compose"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report completeness and quality findings",
		Long: `Inspect the CV data and report findings: missing profile fields,
thin sections, entries without detail. Findings are advisory; nothing
is modified.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, cmd)
		},
	}

	return cmd
}

func runAnalyze(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	entities, err := compose.Load(ctx, st)
	if err != nil {
		return wrapStoreError("failed to load CV data", err)
	}
	stats, err := st.Stats(ctx)
	if err != nil {
		return wrapStoreError("failed to read stats", err)
	}

	findings := compose.Analyze(entities)
	completion := compose.Completeness(entities.Profile, stats)

	if opts.Format == "json" {
		return formatter(opts, cmd).Success(map[string]interface{}{
			"completion": completion,
			"findings":   findings,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Profile completion: %d%%\n", completion)
	fmt.Fprintln(w)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings.")
		return nil
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  [%s] %s: %s\n", f.Type, f.Category, f.Message)
		if f.Suggestion != "" {
			fmt.Fprintf(w, "      -> %s\n", f.Suggestion)
		}
	}
	return nil
}
