package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/app"
	"github.com/bobinette/notenet/errors"
)

func init() {
	RootCmd.AddCommand(&LoginCommand)
	RootCmd.AddCommand(&LogoutCommand)
	RootCmd.AddCommand(&WhoamiCommand)
	RootCmd.AddCommand(&HomeCommand)
	RootCmd.AddCommand(&InviteCommand)
	RootCmd.AddCommand(&UpgradeCommand)
}

var LoginCommand = cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in",
	Long:  "Sign in and keep the session for the next commands",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password := arg(args, 0), arg(args, 1)

		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		form := app.NewLoginForm(svc.session)
		if _, err := form.Submit(cmd.Context(), email, password); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signed in as", svc.dashboard.Header())
		return nil
	},
}

var LogoutCommand = cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long:  "Sign out and forget the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.session.Logout(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var WhoamiCommand = cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in user",
	Long:  "Show the signed in user, its role and its tenant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), svc.dashboard.Header())
		return printJSON(cmd, svc.session.User())
	},
}

var HomeCommand = cobra.Command{
	Use:   "home",
	Short: "Print where the home page sends you",
	Long:  "Print the page the home page redirects to: the dashboard when signed in, the login page otherwise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), app.Home(svc.session))
		return nil
	},
}

var InviteCommand = cobra.Command{
	Use:   "invite <email> [admin|member]",
	Short: "Invite a user in your tenant",
	Long:  "Invite a user in your tenant. Only admins can invite, the role defaults to member",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := notenet.RoleMember
		if len(args) == 2 {
			role = notenet.Role(args[1])
		}
		if !role.Valid() {
			return errors.New("role must be admin or member", errors.BadRequest())
		}

		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}
		if !svc.session.IsAdmin() {
			return errors.New("Only admins can invite users", errors.Forbidden())
		}

		user, err := svc.auth.Invite(cmd.Context(), args[0], role)
		if err != nil {
			return err
		}

		logger.Printf("invited %s as %s", user.Email, user.Role)
		return printJSON(cmd, user)
	},
}

var UpgradeCommand = cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade your tenant to the Pro plan",
	Long:  "Upgrade your tenant to the Pro plan, lifting the note limit. Only admins can upgrade",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}
		if !svc.session.IsAdmin() {
			return errors.New("Please contact your administrator to upgrade to the Pro Plan.", errors.Forbidden())
		}

		if err := svc.dashboard.Upgrade(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), svc.dashboard.Header())
		return nil
	},
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
