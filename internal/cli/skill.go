package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewSkillCommand creates the skill command group.
func NewSkillCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Manage technical skills",
	}

	cmd.AddCommand(newSkillAddCommand(opts))
	cmd.AddCommand(newSkillListCommand(opts))
	cmd.AddCommand(newSkillUpdateCommand(opts))
	cmd.AddCommand(newSkillRemoveCommand(opts))

	return cmd
}

func newSkillAddCommand(opts *RootOptions) *cobra.Command {
	var (
		sk       model.Skill
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a technical skill",
		Long: fmt.Sprintf(`Add a technical skill. Category must be one of %v.
Level is 1-5.

Example:
  resumehub skill add --name Go --category languages --level 5`, model.SkillCategories),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sk.Category = model.SkillCategory(category)

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddSkill(cmd.Context(), sk)
			if err != nil {
				return wrapStoreError("failed to add skill", err)
			}

			return reportCreated(opts, cmd, "skill", id)
		},
	}

	cmd.Flags().StringVar(&sk.Name, "name", "", "skill name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", "", "skill category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().IntVar(&sk.Level, "level", 3, "proficiency level 1-5")
	cmd.Flags().IntVar(&sk.Years, "years", 0, "years of experience")

	return cmd
}

func newSkillListCommand(opts *RootOptions) *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List technical skills",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			if byCategory {
				grouped, err := st.ListSkillsByCategory(ctx)
				if err != nil {
					return wrapStoreError("failed to list skills", err)
				}
				if opts.Format == "json" {
					return formatter(opts, cmd).Success(grouped)
				}
				for _, category := range model.SkillCategories {
					skills := grouped[category]
					if len(skills) == 0 {
						continue
					}
					fmt.Fprintf(w, "=== %s ===\n", category)
					for _, sk := range skills {
						printSkill(w, sk)
					}
				}
				return nil
			}

			skills, err := st.ListSkills(ctx)
			if err != nil {
				return wrapStoreError("failed to list skills", err)
			}
			if opts.Format == "json" {
				return formatter(opts, cmd).Success(skills)
			}
			if len(skills) == 0 {
				fmt.Fprintln(w, "(no skills)")
				return nil
			}
			for _, sk := range skills {
				printSkill(w, sk)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "group skills by category")

	return cmd
}

func printSkill(w interface{ Write([]byte) (int, error) }, sk model.Skill) {
	fmt.Fprintf(w, "  %s  %s (%s, level %d)%s\n", sk.ID, sk.Name, sk.Category, sk.Level, hiddenSuffix(sk.Visible))
}

func newSkillUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		name, category string
		level, years   int
		visible        bool
	)

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update a technical skill",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.SkillPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("category") {
				c := model.SkillCategory(category)
				patch.Category = &c
			}
			if flags.Changed("level") {
				patch.Level = &level
			}
			if flags.Changed("years") {
				patch.Years = &years
			}
			if flags.Changed("visible") {
				patch.Visible = &visible
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateSkill(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update skill", err)
			}

			return formatter(opts, cmd).Success("Skill updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "skill name")
	cmd.Flags().StringVar(&category, "category", "", "skill category")
	cmd.Flags().IntVar(&level, "level", 3, "proficiency level 1-5")
	cmd.Flags().IntVar(&years, "years", 0, "years of experience")
	cmd.Flags().BoolVar(&visible, "visible", true, "visible on composed CVs")

	return cmd
}

func newSkillRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Remove a technical skill",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveSkill(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to remove skill", err)
			}

			return formatter(opts, cmd).Success("Skill removed")
		},
	}
}
