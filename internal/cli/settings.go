package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update application settings",
	}

	cmd.AddCommand(newSettingsShowCommand(opts))
	cmd.AddCommand(newSettingsSetCommand(opts))

	return cmd
}

func newSettingsShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the settings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			settings, err := st.GetSettings(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to read settings", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(settings)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Theme:    %s\n", settings.ThemeMode)
			fmt.Fprintf(w, "Language: %s\n", settings.Language)
			fmt.Fprintf(w, "Template: %s\n", settings.DefaultTemplate)
			fmt.Fprintf(w, "Photo:    %t\n", settings.ShowPhoto)
			return nil
		},
	}
}

func newSettingsSetCommand(opts *RootOptions) *cobra.Command {
	var (
		theme, lang, template string
		showPhoto             bool
	)

	cmd := &cobra.Command{
		Use:           "set",
		Short:         "Update settings fields",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.SettingsPatch
			flags := cmd.Flags()
			if flags.Changed("theme") {
				m := model.ThemeMode(theme)
				patch.ThemeMode = &m
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
				patch.DefaultTemplate = &t
			}
			if flags.Changed("photo") {
				patch.ShowPhoto = &showPhoto
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateSettings(cmd.Context(), patch); err != nil {
				return wrapStoreError("failed to update settings", err)
			}

			return formatter(opts, cmd).Success("Settings updated")
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "theme mode (light|dark|system)")
	cmd.Flags().StringVar(&lang, "language", "", "app language (fr|en|ar)")
	cmd.Flags().StringVar(&template, "template", "", "default template (classic|modern|minimal)")
	cmd.Flags().BoolVar(&showPhoto, "photo", true, "show profile photo")

	return cmd
}
