package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewVariantCommand creates the variant command group.
func NewVariantCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variant",
		Short: "Manage named CV variants",
		Long: `A variant is a named selection of entities plus presentation
choices (language, template, accent color). Exactly one variant is the
default; it cannot be deleted.`,
	}

	cmd.AddCommand(newVariantCreateCommand(opts))
	cmd.AddCommand(newVariantListCommand(opts))
	cmd.AddCommand(newVariantShowCommand(opts))
	cmd.AddCommand(newVariantUpdateCommand(opts))
	cmd.AddCommand(newVariantSetDefaultCommand(opts))
	cmd.AddCommand(newVariantDeleteCommand(opts))

	return cmd
}

func newVariantCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		name, lang, template, accent string
		expIDs, projIDs, skillIDs    []string
		eduIDs, certIDs              []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a CV variant",
		Long: `Create a CV variant. Empty id-set flags mean "include all" for that
collection. New variants are never the default; use set-default to
promote one.

Example:
  resumehub variant create --name "Backend EN" --language en --template modern`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			language, ok := model.ParseLanguage(lang)
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("unsupported language %q", lang))
			}

			variant := model.CVVariant{
				Name:             name,
				Language:         language,
				Template:         model.Template(template),
				ExperienceIDs:    expIDs,
				ProjectIDs:       projIDs,
				SkillIDs:         skillIDs,
				EducationIDs:     eduIDs,
				CertificationIDs: certIDs,
				AccentColor:      accent,
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.CreateVariant(cmd.Context(), variant)
			if err != nil {
				return wrapStoreError("failed to create variant", err)
			}

			return reportCreated(opts, cmd, "variant", id)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "variant name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&lang, "language", "fr", "target language (fr|en|ar)")
	cmd.Flags().StringVar(&template, "template", "classic", "layout template (classic|modern|minimal)")
	cmd.Flags().StringVar(&accent, "accent", "", "accent color")
	cmd.Flags().StringSliceVar(&expIDs, "experience", nil, "experience id to include (repeatable)")
	cmd.Flags().StringSliceVar(&projIDs, "project", nil, "project id to include (repeatable)")
	cmd.Flags().StringSliceVar(&skillIDs, "skill", nil, "skill id to include (repeatable)")
	cmd.Flags().StringSliceVar(&eduIDs, "education", nil, "education id to include (repeatable)")
	cmd.Flags().StringSliceVar(&certIDs, "certification", nil, "certification id to include (repeatable)")

	return cmd
}

func newVariantListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List CV variants (default first)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			variants, err := st.ListVariants(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to list variants", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(variants)
			}

			w := cmd.OutOrStdout()
			for _, v := range variants {
				marker := " "
				if v.Default {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s  %s (%s, %s)\n", marker, v.ID, v.Name, v.Language, v.Template)
			}
			return nil
		},
	}
}

func newVariantShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one CV variant",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			variant, err := st.GetVariant(cmd.Context(), args[0])
			if err != nil {
				return wrapStoreError("failed to read variant", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(variant)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:     %s\n", variant.Name)
			fmt.Fprintf(w, "Language: %s\n", variant.Language)
			fmt.Fprintf(w, "Template: %s\n", variant.Template)
			fmt.Fprintf(w, "Default:  %t\n", variant.Default)
			fmt.Fprintf(w, "Experiences:    %s\n", idSetLabel(variant.ExperienceIDs))
			fmt.Fprintf(w, "Projects:       %s\n", idSetLabel(variant.ProjectIDs))
			fmt.Fprintf(w, "Skills:         %s\n", idSetLabel(variant.SkillIDs))
			fmt.Fprintf(w, "Education:      %s\n", idSetLabel(variant.EducationIDs))
			fmt.Fprintf(w, "Certifications: %s\n", idSetLabel(variant.CertificationIDs))
			if variant.LastExportedAt != nil {
				fmt.Fprintf(w, "Last exported:  %s\n", variant.LastExportedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// idSetLabel renders an id selection for text output. Empty means all.
func idSetLabel(ids []string) string {
	if len(ids) == 0 {
		return "(all)"
	}
	return strings.Join(ids, ", ")
}

func newVariantUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		name, lang, template, accent string
		expIDs, projIDs, skillIDs    []string
		eduIDs, certIDs              []string
	)

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update a CV variant",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.VariantPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("language") {
				language, ok := model.ParseLanguage(lang)
				if !ok {
					return NewExitError(ExitFailure, fmt.Sprintf("unsupported language %q", lang))
				}
				patch.Language = &language
			}
			if flags.Changed("template") {
				t := model.Template(template)
				patch.Template = &t
			}
			if flags.Changed("accent") {
				patch.AccentColor = &accent
			}
			if flags.Changed("experience") {
				patch.ExperienceIDs = &expIDs
			}
			if flags.Changed("project") {
				patch.ProjectIDs = &projIDs
			}
			if flags.Changed("skill") {
				patch.SkillIDs = &skillIDs
			}
			if flags.Changed("education") {
				patch.EducationIDs = &eduIDs
			}
			if flags.Changed("certification") {
				patch.CertificationIDs = &certIDs
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateVariant(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update variant", err)
			}

			return formatter(opts, cmd).Success("Variant updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "variant name")
	cmd.Flags().StringVar(&lang, "language", "", "target language (fr|en|ar)")
	cmd.Flags().StringVar(&template, "template", "", "layout template (classic|modern|minimal)")
	cmd.Flags().StringVar(&accent, "accent", "", "accent color")
	cmd.Flags().StringSliceVar(&expIDs, "experience", nil, "experience id to include (repeatable, replaces the set)")
	cmd.Flags().StringSliceVar(&projIDs, "project", nil, "project id to include (repeatable, replaces the set)")
	cmd.Flags().StringSliceVar(&skillIDs, "skill", nil, "skill id to include (repeatable, replaces the set)")
	cmd.Flags().StringSliceVar(&eduIDs, "education", nil, "education id to include (repeatable, replaces the set)")
	cmd.Flags().StringSliceVar(&certIDs, "certification", nil, "certification id to include (repeatable, replaces the set)")

	return cmd
}

func newVariantSetDefaultCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "set-default <id>",
		Short:         "Promote a variant to be the default",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SetDefaultVariant(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to set default variant", err)
			}

			return formatter(opts, cmd).Success("Default variant set")
		},
	}
}

func newVariantDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a CV variant (the default cannot be deleted)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteVariant(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to delete variant", err)
			}

			return formatter(opts, cmd).Success("Variant deleted")
		},
	}
}
