package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewProjectCommand creates the project command group.
func NewProjectCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage portfolio project entries",
	}

	cmd.AddCommand(newProjectAddCommand(opts))
	cmd.AddCommand(newProjectListCommand(opts))
	cmd.AddCommand(newProjectUpdateCommand(opts))
	cmd.AddCommand(newProjectFeatureCommand(opts))
	cmd.AddCommand(newProjectRemoveCommand(opts))
	cmd.AddCommand(newProjectReorderCommand(opts))

	return cmd
}

func newProjectAddCommand(opts *RootOptions) *cobra.Command {
	var proj model.Project

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add a project entry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddProject(cmd.Context(), proj)
			if err != nil {
				return wrapStoreError("failed to add project", err)
			}

			return reportCreated(opts, cmd, "project", id)
		},
	}

	cmd.Flags().StringVar(&proj.Name, "name", "", "project name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&proj.Date, "date", "", "project period label")
	cmd.Flags().StringVar(&proj.Description, "description", "", "short description")
	cmd.Flags().StringSliceVar(&proj.Highlights, "highlight", nil, "highlight bullet (repeatable)")
	cmd.Flags().StringSliceVar(&proj.Technologies, "tech", nil, "technology (repeatable)")
	cmd.Flags().StringVar(&proj.Link, "link", "", "project URL")

	return cmd
}

func newProjectListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List project entries in display order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			projects, err := st.ListProjects(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to list projects", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(projects)
			}

			w := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(w, "(no project entries)")
				return nil
			}
			for _, p := range projects {
				star := ""
				if p.Featured {
					star = " *"
				}
				fmt.Fprintf(w, "[%d] %s  %s%s%s\n", p.Order, p.ID, p.Name, star, hiddenSuffix(p.Visible))
				if opts.Verbose && len(p.Technologies) > 0 {
					fmt.Fprintf(w, "     Tech: %s\n", strings.Join(p.Technologies, ", "))
				}
			}
			return nil
		},
	}
}

func newProjectUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		name, date, description, link string
		highlights, tech              []string
		featured, visible             bool
	)

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update a project entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.ProjectPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("date") {
				patch.Date = &date
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("highlight") {
				patch.Highlights = &highlights
			}
			if flags.Changed("tech") {
				patch.Technologies = &tech
			}
			if flags.Changed("link") {
				patch.Link = &link
			}
			if flags.Changed("featured") {
				patch.Featured = &featured
			}
			if flags.Changed("visible") {
				patch.Visible = &visible
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateProject(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update project", err)
			}

			return formatter(opts, cmd).Success("Project updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&date, "date", "", "project period label")
	cmd.Flags().StringVar(&description, "description", "", "short description")
	cmd.Flags().StringSliceVar(&highlights, "highlight", nil, "highlight bullet (repeatable, replaces the list)")
	cmd.Flags().StringSliceVar(&tech, "tech", nil, "technology (repeatable, replaces the list)")
	cmd.Flags().StringVar(&link, "link", "", "project URL")
	cmd.Flags().BoolVar(&featured, "featured", false, "featured project")
	cmd.Flags().BoolVar(&visible, "visible", true, "visible on composed CVs")

	return cmd
}

func newProjectFeatureCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "feature <id>",
		Short:         "Toggle the featured flag on a project",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ToggleProjectFeatured(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to toggle featured flag", err)
			}

			return formatter(opts, cmd).Success("Featured flag toggled")
		},
	}
}

func newProjectRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Remove a project entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveProject(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to remove project", err)
			}

			return formatter(opts, cmd).Success("Project removed")
		},
	}
}

func newProjectReorderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reorder <id>...",
		Short:         "Reorder project entries",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ReorderProjects(cmd.Context(), args); err != nil {
				return wrapStoreError("failed to reorder projects", err)
			}

			return formatter(opts, cmd).Success("Projects reordered")
		},
	}
}
