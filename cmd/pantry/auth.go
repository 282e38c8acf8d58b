package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	regUsername string
	regEmail    string
	regPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account in the local user registry.

Registering does not sign you in; run 'pantry login' afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		if err := p.SignUp(regUsername, regEmail, regPassword); err != nil {
			return err
		}
		slog.Info("account registered", "email", regEmail)
		fmt.Printf("Account created for %s. Run 'pantry login' to sign in.\n", regEmail)
		return nil
	},
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		sess, err := p.SignIn(loginEmail, loginPassword)
		if err != nil {
			return err
		}
		slog.Info("signed in", "email", sess.Email)
		fmt.Printf("Welcome back, %s!\n", sess.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		if err := p.SignOut(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()

		sess, ok, err := p.CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s <%s>\n", sess.Username, sess.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&regUsername, "username", "", "Display name for the account")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email address (unique)")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "Password")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}
