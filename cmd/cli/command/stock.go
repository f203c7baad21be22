package command

import (
	"fmt"
	"strconv"

	"storehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Stock management commands",
	Long:  `Record deliveries and corrections, and inspect a product's stock history`,
}

var recordStockCmd = &cobra.Command{
	Use:   "record [product-id] [delta]",
	Short: "Record a stock movement for a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta: %w", err)
		}

		reason, _ := cmd.Flags().GetString("reason")
		req := client.RecordStockRequest{Delta: delta, Reason: reason}
		if supplierID, _ := cmd.Flags().GetInt64("supplier"); supplierID != 0 {
			req.SupplierID = &supplierID
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.RecordStock(productID, &req)
		if err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}

		fmt.Println("✓ Stock movement recorded!")
		fmt.Printf("Product: %d, delta: %+d, reason: %s\n", result.ProductID, result.Delta, result.Reason)
		return nil
	},
}

var stockHistoryCmd = &cobra.Command{
	Use:   "history [product-id]",
	Short: "Show a product's stock movement history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.StockHistory(productID, page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to get stock history: %w", err)
		}

		fmt.Printf("Stock movements for product %d (page %d/%d):\n", productID, result.Page, result.TotalPages)
		for _, m := range result.Data {
			fmt.Printf("  %s  %+d  (%s)\n", m.CreatedAt.Format("2006-01-02 15:04:05"), m.Delta, m.Reason)
		}
		return nil
	},
}

func init() {
	stockCmd.AddCommand(recordStockCmd)
	stockCmd.AddCommand(stockHistoryCmd)

	recordStockCmd.Flags().String("reason", "correction", "Movement reason: delivery, order or correction")
	recordStockCmd.Flags().Int64("supplier", 0, "Supplier ID for deliveries")

	stockHistoryCmd.Flags().Int("page", 1, "Page number")
	stockHistoryCmd.Flags().Int("page-size", 20, "Results per page")
}
