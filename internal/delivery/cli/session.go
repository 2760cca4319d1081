package cli

import (
	"fmt"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/util"

	"github.com/spf13/cobra"
)

func (r *runner) loginCommand() *cobra.Command {
	var credentials entity.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the order server",
		Long: `Log in with a username and password. Missing values are asked for
interactively. The session is stored for later commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentials.Username == "" || credentials.Password == "" {
				if err := r.app.Prompter.Credentials(&credentials); err != nil {
					return err
				}
			}

			sess, err := r.app.Auth.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", credentials.Username, sess.Role)

			return nil
		},
	}

	cmd.Flags().StringVarP(&credentials.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "account password")

	return cmd
}

func (r *runner) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func (r *runner) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := r.app.Auth.Current(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Role:    %s\n", sess.Role)
			fmt.Fprintf(out, "Expires: %s\n", util.FormatExpiry(sess.AccessExpiresAt, r.now()))

			return nil
		},
	}
}

func (r *runner) refreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Renew the access token with the stored refresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := r.app.Auth.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session renewed, expires %s\n", util.FormatExpiry(sess.AccessExpiresAt, r.now()))

			return nil
		},
	}
}
