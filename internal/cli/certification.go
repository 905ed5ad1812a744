package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmalouki/resumehub/internal/model"
)

// NewCertificationCommand creates the certification command group.
func NewCertificationCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certification",
		Aliases: []string{"cert"},
		Short:   "Manage certification entries",
	}

	cmd.AddCommand(newCertificationAddCommand(opts))
	cmd.AddCommand(newCertificationListCommand(opts))
	cmd.AddCommand(newCertificationUpdateCommand(opts))
	cmd.AddCommand(newCertificationRemoveCommand(opts))

	return cmd
}

func newCertificationAddCommand(opts *RootOptions) *cobra.Command {
	var cert model.Certification

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add a certification entry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddCertification(cmd.Context(), cert)
			if err != nil {
				return wrapStoreError("failed to add certification", err)
			}

			return reportCreated(opts, cmd, "certification", id)
		},
	}

	cmd.Flags().StringVar(&cert.Name, "name", "", "certification name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&cert.Issuer, "issuer", "", "issuing organization (required)")
	_ = cmd.MarkFlagRequired("issuer")
	cmd.Flags().StringVar(&cert.Date, "date", "", "issue date label")
	cmd.Flags().StringVar(&cert.Link, "link", "", "verification URL")

	return cmd
}

func newCertificationListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List certification entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			certs, err := st.ListCertifications(cmd.Context())
			if err != nil {
				return wrapStoreError("failed to list certifications", err)
			}

			if opts.Format == "json" {
				return formatter(opts, cmd).Success(certs)
			}

			w := cmd.OutOrStdout()
			if len(certs) == 0 {
				fmt.Fprintln(w, "(no certification entries)")
				return nil
			}
			for _, c := range certs {
				fmt.Fprintf(w, "  %s  %s (%s, %s)\n", c.ID, c.Name, c.Issuer, emptyDash(c.Date))
			}
			return nil
		},
	}
}

func newCertificationUpdateCommand(opts *RootOptions) *cobra.Command {
	var name, issuer, date, link string

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update a certification entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.CertificationPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("issuer") {
				patch.Issuer = &issuer
			}
			if flags.Changed("date") {
				patch.Date = &date
			}
			if flags.Changed("link") {
				patch.Link = &link
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateCertification(cmd.Context(), args[0], patch); err != nil {
				return wrapStoreError("failed to update certification", err)
			}

			return formatter(opts, cmd).Success("Certification updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "certification name")
	cmd.Flags().StringVar(&issuer, "issuer", "", "issuing organization")
	cmd.Flags().StringVar(&date, "date", "", "issue date label")
	cmd.Flags().StringVar(&link, "link", "", "verification URL")

	return cmd
}

func newCertificationRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <id>",
		Short:         "Remove a certification entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveCertification(cmd.Context(), args[0]); err != nil {
				return wrapStoreError("failed to remove certification", err)
			}

			return formatter(opts, cmd).Success("Certification removed")
		},
	}
}
