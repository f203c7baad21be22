package command

import (
	"fmt"

	"storehub/cmd/cli/authentication"
	"storehub/cmd/cli/command/client"
	"storehub/cmd/cli/dto"

	"github.com/spf13/cobra"
)

// auth.go handles authentication commands for the storehub CLI.

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the StoreHub API server. Supports login, registration, logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new StoreHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c dto.RegisterRequest
		c.Username, _ = cmd.Flags().GetString("username")
		c.Password, _ = cmd.Flags().GetString("password")
		c.Email, _ = cmd.Flags().GetString("email")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Register(&c)
		if err != nil {
			return fmt.Errorf("registration process failed: %w", err)
		}

		fmt.Println("✓ Registration successful! Please login to continue.")
		fmt.Printf("UserID: %s\n", response.UserID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your StoreHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c dto.LoginRequest
		c.Username, _ = cmd.Flags().GetString("username")
		c.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&c)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken:  response.AccessToken,
			RefreshToken: response.RefreshToken,
			UserID:       response.UserID,
			Username:     response.Username,
			Role:         response.Role,
		})
		if err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Printf("✓ Successfully logged in as %s (%s)\n", response.Username, response.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your StoreHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err == nil && creds.RefreshToken != "" {
			httpClient := client.NewHTTPClient(apiURL)
			// Best effort; the local credentials go away regardless
			httpClient.Logout(creds.RefreshToken)
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		fmt.Println("✓ Successfully logged out.")
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err != nil {
			return fmt.Errorf("not logged in: %w", err)
		}

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.RefreshToken(&dto.RefreshTokenRequest{RefreshToken: creds.RefreshToken})
		if err != nil {
			return fmt.Errorf("token refresh failed: %w", err)
		}

		creds.AccessToken = response.AccessToken
		if err := authentication.StoreTokens(creds); err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Println("✓ Access token refreshed.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(refreshCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
