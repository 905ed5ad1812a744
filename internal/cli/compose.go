package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/compose"
	"github.com/kmalouki/resumehub/internal/model"
	"github.com/kmalouki/resumehub/internal/store"
)

// NewComposeCommand creates the compose command.
func NewComposeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose [variant-id]",
		Short: "Compose a variant into a render-ready snapshot",
		Long: `Compose a CV variant into a filtered, ordered snapshot of the
entity collections. Without an argument the default variant is used.

Hidden records and records outside the variant's id sets are excluded;
ids referencing removed records are skipped.

Examples:
  resumehub compose
  resumehub compose 0198a7c2-... --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, cmd, args)
		},
	}

	return cmd
}

func runCompose(opts *RootOptions, cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := composeSnapshot(ctx, st, args)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return formatter(opts, cmd).Success(snap)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Variant: %s (%s, %s)\n", snap.Variant.Name, snap.Variant.Language, snap.Variant.Template)
	fmt.Fprintf(w, "Profile: %s, %s\n", emptyDash(snap.Profile.Name), emptyDash(snap.Profile.Title))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Experiences:    %d\n", len(snap.Experiences))
	fmt.Fprintf(w, "Projects:       %d\n", len(snap.Projects))
	fmt.Fprintf(w, "Skills:         %d\n", len(snap.Skills))
	fmt.Fprintf(w, "Education:      %d\n", len(snap.Education))
	fmt.Fprintf(w, "Certifications: %d\n", len(snap.Certifications))

	if opts.Verbose {
		fmt.Fprintln(w)
		for _, e := range snap.Experiences {
			fmt.Fprintf(w, "  EXP  %s @ %s\n", e.Role, e.Company)
		}
		for _, p := range snap.Projects {
			fmt.Fprintf(w, "  PROJ %s\n", p.Name)
		}
	}
	return nil
}

// composeSnapshot resolves the variant from args (default variant when
// absent) and builds its snapshot.
func composeSnapshot(ctx context.Context, st *store.Store, args []string) (compose.Snapshot, error) {
	var variant model.CVVariant
	var err error
	if len(args) == 1 {
		variant, err = st.GetVariant(ctx, args[0])
	} else {
		variant, err = st.DefaultVariant(ctx)
	}
	if err != nil {
		return compose.Snapshot{}, wrapStoreError("failed to resolve variant", err)
	}

	entities, err := compose.Load(ctx, st)
	if err != nil {
		return compose.Snapshot{}, wrapStoreError("failed to load CV data", err)
	}

	return compose.NewSnapshot(variant, entities), nil
}
