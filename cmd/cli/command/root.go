package command

// root.go defines the root command for the storehub CLI.
// Global flags and shared client plumbing live here.

import (
	"fmt"
	"os"

	"storehub/cmd/cli/authentication"
	"storehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL string // Global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storehub",
	Short: "storehub - StoreHub admin console",
	Long: `storehub is the command line admin console for the StoreHub API.
Staff can use it to:
- Manage the product catalogue, stock levels and suppliers
- Create and retire discount codes
- Work through customer orders
- Moderate review discussion threads

Use "storehub command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(supplierCmd)
	rootCmd.AddCommand(discountCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(threadCmd)
}

// GetAuthenticatedClient builds an HTTP client carrying the stored
// access token. Commands fail later with a 401 if the token is stale;
// "auth login" refreshes it.
func GetAuthenticatedClient() *client.HTTPClient {
	httpClient := client.NewHTTPClient(apiURL)
	if creds, err := authentication.GetTokens(); err == nil {
		httpClient.SetToken(creds.AccessToken)
	}
	return httpClient
}
