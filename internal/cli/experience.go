package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewExperienceCommand creates the experience command group.
func NewExperienceCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "experience",
		Aliases: []string{"exp"},
		Short:   "Manage work experience entries",
	}

	cmd.AddCommand(newExperienceAddCommand(opts))
	cmd.AddCommand(newExperienceListCommand(opts))
	cmd.AddCommand(newExperienceUpdateCommand(opts))
	cmd.AddCommand(newExperienceRemoveCommand(opts))
	cmd.AddCommand(newExperienceReorderCommand(opts))

	return cmd
}

func newExperienceAddCommand(opts *RootOptions) *cobra.Command {
	var exp model.Experience

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work experience entry",
		Long: `Add a work experience entry. The entry is appended at the end of the
display order and starts visible.

Example:
  resumehub experience add --role "Backend Engineer" --company Acme \
    --start "Jan 2023" --end Present --task "Built the billing service"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddExperience(cmd.Context(), exp)
			if err != nil {
				return wrapStoreError("failed to add experience", err)
			}

			return reportCreated(opts, cmd, "experience", id)
		},
	}

	cmd.Flags().StringVar(&exp.Role, "role", "", "job title (required)")
	_ = cmd.MarkFlagRequired("role")
	cmd.Flags().StringVar(&exp.Company, "company", "", "company name (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&exp.Location, "location", "", "work location")
	cmd.Flags().StringVar(&exp.StartDate, "start", "", "start period label")
	cmd.Flags().StringVar(&exp.EndDate, "end", "", "end period label")
	cmd.Flags().StringSliceVar(&exp.Tasks, "task", nil, "task bullet (repeatable)")
	cmd.Flags().StringSliceVar(&exp.Technologies, "tech", nil, "technology (repeatable)")

	return cmd
}

func newExperienceListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List work experience entries in display order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			experiences, err := st.ListExperiences(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to list experiences", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(experiences)
			}

			w := cmd.OutOrStdout()
			if len(experiences) == 0 {
				fmt.Fprintln(w, "(no experience entries)")
				return nil
			}
			for _, e := range experiences {
				fmt.Fprintf(w, "[%d] %s  %s @ %s (%s - %s)%s\n",
					e.Order, e.ID, e.Role, e.Company, e.StartDate, e.EndDate, hiddenSuffix(e.Visible))
				if opts.Verbose && len(e.Technologies) > 0 {
					fmt.Fprintf(w, "     Tech: %s\n", strings.Join(e.Technologies, ", "))
				}
			}
			return nil
		},
	}
}

func newExperienceUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		role, company, location, start, end string
		tasks, tech                         []string
		visible                             bool
	)

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update a work experience entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.ExperiencePatch
			flags := cmd.Flags()
			if flags.Changed("role") {
				patch.Role = &role
			}
			if flags.Changed("company") {
				patch.Company = &company
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
			if flags.Changed("task") {
				patch.Tasks = &tasks
			}
			if flags.Changed("tech") {
				patch.Technologies = &tech
			}
			if flags.Changed("visible") {
				patch.Visible = &visible
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateExperience(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update experience", err)
			}

			return formatter(opts, cmd).Success("Experience updated")
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "job title")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&location, "location", "", "work location")
	cmd.Flags().StringVar(&start, "start", "", "start period label")
	cmd.Flags().StringVar(&end, "end", "", "end period label")
	cmd.Flags().StringSliceVar(&tasks, "task", nil, "task bullet (repeatable, replaces the list)")
	cmd.Flags().StringSliceVar(&tech, "tech", nil, "technology (repeatable, replaces the list)")
	cmd.Flags().BoolVar(&visible, "visible", true, "visible on composed CVs")

	return cmd
}

func newExperienceRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Remove a work experience entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveExperience(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to remove experience", err)
			}

			return formatter(opts, cmd).Success("Experience removed")
		},
	}
}

func newExperienceReorderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Reorder work experience entries",
		Long: `Set a new display order for the experience collection. The ids must
be an exact permutation of the existing entries.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ReorderExperiences(cmd.Context(), args); err != nil {
				return wrapStoreError("failed to reorder experiences", err)
			}

			return formatter(opts, cmd).Success("Experiences reordered")
		},
	}
}

// reportCreated outputs the id of a newly created record.
func reportCreated(opts *RootOptions, cmd *cobra.Command, kind, id string) error {
	if opts.Format == "json" {
		return formatter(opts, cmd).Success(map[string]string{"id": id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", kind, id)
	return nil
}

// hiddenSuffix marks hidden records in text listings.
func hiddenSuffix(visible bool) string {
	if visible {
		return ""
	}
	return "  [hidden]"
}
