package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewEducationCommand creates the education command group.
func NewEducationCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "education",
		Aliases: []string{"edu"},
		Short:   "Manage education entries",
	}

	cmd.AddCommand(newEducationAddCommand(opts))
	cmd.AddCommand(newEducationListCommand(opts))
	cmd.AddCommand(newEducationUpdateCommand(opts))
	cmd.AddCommand(newEducationRemoveCommand(opts))
	cmd.AddCommand(newEducationReorderCommand(opts))

	return cmd
}

func newEducationAddCommand(opts *RootOptions) *cobra.Command {
	var edu model.Education

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add an education entry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddEducation(cmd.Context(), edu)
			if err != nil {
				return wrapStoreError("failed to add education", err)
			}

			return reportCreated(opts, cmd, "education", id)
		},
	}

	cmd.Flags().StringVar(&edu.Degree, "degree", "", "degree name (required)")
	_ = cmd.MarkFlagRequired("degree")
	cmd.Flags().StringVar(&edu.Institution, "institution", "", "institution name (required)")
	_ = cmd.MarkFlagRequired("institution")
	cmd.Flags().StringVar(&edu.Location, "location", "", "institution location")
	cmd.Flags().StringVar(&edu.StartDate, "start", "", "start period label")
	cmd.Flags().StringVar(&edu.EndDate, "end", "", "end period label")
	cmd.Flags().StringVar(&edu.Description, "description", "", "short description")

	return cmd
}

func newEducationListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List education entries in display order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.ListEducation(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to list education", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(entries)
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "(no education entries)")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(w, "[%d] %s  %s, %s (%s)\n", e.Order, e.ID, e.Degree, e.Institution, e.EndDate)
			}
			return nil
		},
	}
}

func newEducationUpdateCommand(opts *RootOptions) *cobra.Command {
	var degree, institution, location, start, end, description string

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update an education entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.EducationPatch
			flags := cmd.Flags()
			if flags.Changed("degree") {
				patch.Degree = &degree
			}
			if flags.Changed("institution") {
				patch.Institution = &institution
			}
			if flags.Changed("location") {
				patch.Location = &location
			}
			if flags.Changed("start") {
				patch.StartDate = &start
			}
			if flags.Changed("end") {
				patch.EndDate = &end
			}
			if flags.Changed("description") {
				patch.Description = &description
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateEducation(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update education", err)
			}

			return formatter(opts, cmd).Success("Education updated")
		},
	}

	cmd.Flags().StringVar(&degree, "degree", "", "degree name")
	cmd.Flags().StringVar(&institution, "institution", "", "institution name")
	cmd.Flags().StringVar(&location, "location", "", "institution location")
	cmd.Flags().StringVar(&start, "start", "", "start period label")
	cmd.Flags().StringVar(&end, "end", "", "end period label")
	cmd.Flags().StringVar(&description, "description", "", "short description")

	return cmd
}

func newEducationRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Remove an education entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveEducation(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to remove education", err)
			}

			return formatter(opts, cmd).Success("Education removed")
		},
	}
}

func newEducationReorderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reorder <id>...",
		Short:         "Reorder education entries",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ReorderEducation(cmd.Context(), args); err != nil {
				return wrapStoreError("failed to reorder education", err)
			}

			return formatter(opts, cmd).Success("Education reordered")
		},
	}
}
