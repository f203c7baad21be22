package command

import (
	"fmt"
	"strconv"

	"storehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Supplier management commands",
}

var listSupplierCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := GetAuthenticatedClient()
		suppliers, err := httpClient.ListSuppliers()
		if err != nil {
			return fmt.Errorf("failed to list suppliers: %w", err)
		}

		for _, s := range suppliers {
			status := "inactive"
			if s.Active {
				status = "active"
			}
			feed := "no feed"
			if s.FeedURL != nil {
				feed = *s.FeedURL
			}
			fmt.Printf("  [%d] %s (%s, %s)\n", s.ID, s.Name, status, feed)
		}
		return nil
	},
}

var createSupplierCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		req := client.SupplierRequest{Name: &name}
		if email, _ := cmd.Flags().GetString("email"); email != "" {
			req.Email = &email
		}
		if feedURL, _ := cmd.Flags().GetString("feed-url"); feedURL != "" {
			req.FeedURL = &feedURL
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.CreateSupplier(&req)
		if err != nil {
			return fmt.Errorf("failed to create supplier: %w", err)
		}

		fmt.Printf("✓ Supplier %d (%s) created!\n", result.ID, result.Name)
		return nil
	},
}

var updateSupplierCmd = &cobra.Command{
	Use:   "update [supplier-id]",
	Short: "Update supplier fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supplierID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier ID: %w", err)
		}

		var req client.SupplierRequest
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			req.Email = &email
		}
		if cmd.Flags().Changed("feed-url") {
			feedURL, _ := cmd.Flags().GetString("feed-url")
			req.FeedURL = &feedURL
		}
		if cmd.Flags().Changed("active") {
			active, _ := cmd.Flags().GetBool("active")
			req.Active = &active
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.UpdateSupplier(supplierID, &req)
		if err != nil {
			return fmt.Errorf("failed to update supplier: %w", err)
		}

		fmt.Printf("✓ Supplier %d updated!\n", result.ID)
		return nil
	},
}

var deleteSupplierCmd = &cobra.Command{
	Use:   "delete [supplier-id]",
	Short: "Remove a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supplierID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		if err := httpClient.DeleteSupplier(supplierID); err != nil {
			return fmt.Errorf("failed to delete supplier: %w", err)
		}

		fmt.Printf("✓ Supplier %d deleted!\n", supplierID)
		return nil
	},
}

func init() {
	supplierCmd.AddCommand(listSupplierCmd)
	supplierCmd.AddCommand(createSupplierCmd)
	supplierCmd.AddCommand(updateSupplierCmd)
	supplierCmd.AddCommand(deleteSupplierCmd)

	createSupplierCmd.Flags().String("email", "", "Supplier contact email")
	createSupplierCmd.Flags().String("feed-url", "", "Supplier feed URL for automatic sync")

	updateSupplierCmd.Flags().String("name", "", "New supplier name")
	updateSupplierCmd.Flags().String("email", "", "New contact email")
	updateSupplierCmd.Flags().String("feed-url", "", "New feed URL")
	updateSupplierCmd.Flags().Bool("active", true, "Whether the supplier is active")
}
