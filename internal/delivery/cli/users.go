package cli

import (
	"fmt"
	"strconv"
	"strings"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"

	"github.com/spf13/cobra"
)

func (r *runner) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
		Args:  cobra.NoArgs,
		// PreRunE is not inherited, so each subcommand repeats the guard.
	}

	cmd.AddCommand(
		r.listUsersCommand(),
		r.createUserCommand(),
		r.setActiveCommand("activate", "Enable an account", true),
		r.setActiveCommand("deactivate", "Disable an account", false),
		r.setRoleCommand(),
	)

	return cmd
}

func (r *runner) listUsersCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List accounts",
		Args:    cobra.NoArgs,
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := r.app.Users.ListUsers(cmd.Context(), entity.Role(strings.ToUpper(role)))
			if err != nil {
				return err
			}
			renderUsers(cmd.OutOrStdout(), users)

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "only accounts with this role (ADMIN or TECNICO)")

	return cmd
}

func (r *runner) createUserCommand() *cobra.Command {
	var (
		user entity.NewUser
		role string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an account",
		Args:    cobra.NoArgs,
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			user.Role = entity.Role(strings.ToUpper(role))
			if user.Password == "" {
				credentials := entity.Credentials{Username: user.Username}
				if err := r.app.Prompter.Credentials(&credentials); err != nil {
					return err
				}
				user.Username, user.Password = credentials.Username, credentials.Password
			}

			created, err := r.app.Users.CreateUser(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%d, %s)\n", created.Username, created.ID, created.Role)

			return nil
		},
	}

	cmd.Flags().StringVar(&user.Username, "username", "", "account username")
	cmd.Flags().StringVar(&user.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(entity.RoleTechnician), "ADMIN or TECNICO")

	return cmd
}

func (r *runner) setActiveCommand(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:     use + " ID",
		Short:   short,
		Args:    cobra.ExactArgs(1),
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := userID(args[0])
			if err != nil {
				return err
			}
			if err := r.app.Users.SetActive(cmd.Context(), id, active); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d active: %s\n", id, yesNo(active))

			return nil
		},
	}
}

func (r *runner) setRoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "role ID ROLE",
		Short:   "Change an account's role",
		Args:    cobra.ExactArgs(2),
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := userID(args[0])
			if err != nil {
				return err
			}
			role := entity.Role(strings.ToUpper(args[1]))
			if err := r.app.Users.SetRole(cmd.Context(), id, role); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d role: %s\n", id, role)

			return nil
		},
	}
}

func userID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("user id must be a positive integer")
	}

	return id, nil
}
