package command

import (
	"fmt"
	"strconv"
	"strings"

	"storehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Product catalogue commands",
	Long:  `Manage the product catalogue: list, search, create, update, delete products`,
}

var listProductCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.ListProducts(page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		fmt.Printf("Products (page %d/%d, %d total):\n", result.Page, result.TotalPages, result.Total)
		for _, p := range result.Data {
			printProduct(&p)
		}
		return nil
	},
}

var searchProductCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.SearchProducts(query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		fmt.Printf("Found %d products:\n", result.Total)
		for _, p := range result.Data {
			printProduct(&p)
		}
		return nil
	},
}

var getProductCmd = &cobra.Command{
	Use:   "get [product-id]",
	Short: "Get a product by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.GetProductByID(productID)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}

		printProduct(result)
		return nil
	},
}

var createProductCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a product to the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateProductRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.PriceCents, _ = cmd.Flags().GetInt64("price-cents")
		req.StockQty, _ = cmd.Flags().GetInt("stock")

		if desc, _ := cmd.Flags().GetString("description"); desc != "" {
			req.Description = &desc
		}
		if supplierID, _ := cmd.Flags().GetInt64("supplier"); supplierID != 0 {
			req.SupplierID = &supplierID
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.CreateProduct(&req)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		fmt.Println("✓ Product created successfully!")
		printProduct(result)
		return nil
	},
}

var updateProductCmd = &cobra.Command{
	Use:   "update [product-id]",
	Short: "Update product fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}

		var req client.UpdateProductRequest
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("price-cents") {
			price, _ := cmd.Flags().GetInt64("price-cents")
			req.PriceCents = &price
		}
		if cmd.Flags().Changed("active") {
			active, _ := cmd.Flags().GetBool("active")
			req.Active = &active
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.UpdateProduct(productID, &req)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}

		fmt.Println("✓ Product updated successfully!")
		printProduct(result)
		return nil
	},
}

var deleteProductCmd = &cobra.Command{
	Use:   "delete [product-id]",
	Short: "Remove a product from the catalogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		if err := httpClient.DeleteProduct(productID); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		fmt.Printf("✓ Product %d deleted successfully!\n", productID)
		return nil
	},
}

func printProduct(p *client.ProductResponse) {
	status := "inactive"
	if p.Active {
		status = "active"
	}
	fmt.Printf("  [%d] %s - %d.%02d (%d in stock, %s)\n",
		p.ID, p.Name, p.PriceCents/100, p.PriceCents%100, p.StockQty, status)
}

func init() {
	productCmd.AddCommand(listProductCmd)
	productCmd.AddCommand(searchProductCmd)
	productCmd.AddCommand(getProductCmd)
	productCmd.AddCommand(createProductCmd)
	productCmd.AddCommand(updateProductCmd)
	productCmd.AddCommand(deleteProductCmd)

	listProductCmd.Flags().Int("page", 1, "Page number")
	listProductCmd.Flags().Int("page-size", 20, "Results per page")

	createProductCmd.Flags().String("name", "", "Product name")
	createProductCmd.Flags().Int64("price-cents", 0, "Price in cents")
	createProductCmd.Flags().Int("stock", 0, "Initial stock quantity")
	createProductCmd.Flags().String("description", "", "Product description")
	createProductCmd.Flags().Int64("supplier", 0, "Supplier ID")
	createProductCmd.MarkFlagRequired("name")
	createProductCmd.MarkFlagRequired("price-cents")

	updateProductCmd.Flags().String("name", "", "New product name")
	updateProductCmd.Flags().Int64("price-cents", 0, "New price in cents")
	updateProductCmd.Flags().Bool("active", true, "Whether the product is listed")
}
