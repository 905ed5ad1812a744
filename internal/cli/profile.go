package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the personal profile",
	}

	cmd.AddCommand(newProfileShowCommand(opts))
	cmd.AddCommand(newProfileSetCommand(opts))

	return cmd
}

func newProfileShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			profile, err := st.GetProfile(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to read profile", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(profile)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:      %s\n", emptyDash(profile.Name))
			fmt.Fprintf(w, "Title:     %s\n", emptyDash(profile.Title))
			fmt.Fprintf(w, "Email:     %s\n", emptyDash(profile.Email))
			fmt.Fprintf(w, "Phone:     %s\n", emptyDash(profile.Phone))
			fmt.Fprintf(w, "Address:   %s\n", emptyDash(profile.Address))
			fmt.Fprintf(w, "GitHub:    %s\n", emptyDash(profile.GitHub))
			fmt.Fprintf(w, "LinkedIn:  %s\n", emptyDash(profile.LinkedIn))
			fmt.Fprintf(w, "Portfolio: %s\n", emptyDash(profile.Portfolio))
			if len(profile.SoftSkills) > 0 {
				fmt.Fprintf(w, "Soft Skills: %s\n", strings.Join(profile.SoftSkills, ", "))
			}
			for _, lang := range profile.SpokenLanguages {
				fmt.Fprintf(w, "Language:  %s (%s)\n", lang.Name, lang.Level)
			}
			return nil
		},
	}
}

func newProfileSetCommand(opts *RootOptions) *cobra.Command {
	var (
		name, title, email, phone, address string
		github, linkedin, portfolio, image string
		softSkills                         []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long: `Update one or more profile fields. Only flags that are given are
applied; everything else is left unchanged.

Example:
  resumehub profile set --name "Khalil Malouki" --email khalil@example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.ProfilePatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("email") {
				patch.Email = &email
			}
			if flags.Changed("phone") {
				patch.Phone = &phone
			}
			if flags.Changed("address") {
				patch.Address = &address
			}
			if flags.Changed("github") {
				patch.GitHub = &github
			}
			if flags.Changed("linkedin") {
				patch.LinkedIn = &linkedin
			}
			if flags.Changed("portfolio") {
				patch.Portfolio = &portfolio
			}
			if flags.Changed("image") {
				patch.ProfileImage = &image
			}
			if flags.Changed("soft-skill") {
				patch.SoftSkills = &softSkills
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateProfile(cmd.Context(), patch); err != nil {
				return wrapStoreError("failed to update profile", err)
			}

			return formatter(opts, cmd).Success("Profile updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&title, "title", "", "professional title")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.Flags().StringVar(&github, "github", "", "GitHub URL")
	cmd.Flags().StringVar(&linkedin, "linkedin", "", "LinkedIn URL")
	cmd.Flags().StringVar(&portfolio, "portfolio", "", "portfolio URL")
	cmd.Flags().StringVar(&image, "image", "", "profile image reference")
	cmd.Flags().StringSliceVar(&softSkills, "soft-skill", nil, "soft skill (repeatable, replaces the list)")

	return cmd
}

// emptyDash renders empty values as a dash in text output.
func emptyDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
