package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/compose"
)

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	*RootOptions
	File string
}

// NewMatchCommand creates the match command.
func NewMatchCommand(opts *RootOptions) *cobra.Command {
	matchOpts := &MatchOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "match [description...]",
		Short: "Match a job description against the CV",
		Long: `Extract known technology keywords from a job description and check
them against the candidate's skills and the technologies attached to
projects and experiences. Matching is case-insensitive.

The description is read from the arguments, or from a file with --file.

Examples:
  resumehub match "Looking for a Go engineer with Docker and PostgreSQL"
  resumehub match --file posting.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(matchOpts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&matchOpts.File, "file", "", "read the description from a file")

	return cmd
}

func runMatch(opts *MatchOptions, cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read description", err)
		}
		description = string(data)
	}
	if strings.TrimSpace(description) == "" {
		return NewExitError(ExitCommandError, "no job description given")
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	entities, err := compose.Load(cmd.Context(), st)
	if err != nil {
		return wrapStoreError("failed to load CV data", err)
	}

	result := compose.MatchJob(description, entities)

	if opts.Format == "json" {
		return formatter(opts.RootOptions, cmd).Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Matched (%d): %s\n", len(result.Matched), listOrNone(result.Matched))
	fmt.Fprintf(w, "Missing (%d): %s\n", len(result.Missing), listOrNone(result.Missing))
	return nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
