package auth

import (
	// 外部依赖
	"fmt"

	cobra "github.com/spf13/cobra"

	// 内部引用
	app "github.com/scienceol/labdesk/internal/app"
	common "github.com/scienceol/labdesk/pkg/common"
	coreAuth "github.com/scienceol/labdesk/pkg/core/auth"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:          "auth",
		Short:        "login, registration and session management",
		SilenceUsage: true,
	}
	root.AddCommand(newLogin(), newRegister(), newLogout(), newWhoami())
	return root
}

func newLogin() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:  "login",
		Long: "authenticate against the backend and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			ctx := logger.WithRequestID(cmd.Context())

			user, err := a.Auth.Login(ctx, &coreAuth.LoginReq{Email: email, Password: password})
			if err != nil {
				return err
			}

			fmt.Printf("logged in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegister() *cobra.Command {
	var (
		role, name, email, password string
		roleID                      int64
	)

	cmd := &cobra.Command{
		Use:  "register",
		Long: "register a new account; doctors need no numeric id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			ctx := logger.WithRequestID(cmd.Context())

			user, err := a.Auth.Register(ctx, &coreAuth.RegisterReq{
				Role:     common.Role(role),
				RoleID:   roleID,
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("registered %s <%s> (%s)\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "student", "student|instructor|technician|doctor")
	cmd.Flags().Int64Var(&roleID, "id", 0, "student/instructor/technician id")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogout() *cobra.Command {
	return &cobra.Command{
		Use:  "logout",
		Long: "clear the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			if err := a.Auth.Logout(logger.WithRequestID(cmd.Context())); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoami() *cobra.Command {
	return &cobra.Command{
		Use:  "whoami",
		Long: "show the current session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			user, err := a.Auth.Current(logger.WithRequestID(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> role=%s id=%d\n", user.Name, user.Email, user.Role, user.ID)
			return nil
		},
	}
}
