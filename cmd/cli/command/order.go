package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Order management commands",
	Long:  `Inspect customer orders and move them through their lifecycle`,
}

var listOrderCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.ListAllOrders(page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		fmt.Printf("Orders (page %d/%d, %d total):\n", result.Page, result.TotalPages, result.Total)
		for _, o := range result.Data {
			fmt.Printf("  [%d] %s - %d.%02d (%s, %d items)\n",
				o.ID, o.Status, o.TotalCents/100, o.TotalCents%100,
				o.CreatedAt.Format("2006-01-02"), len(o.Items))
		}
		return nil
	},
}

var getOrderCmd = &cobra.Command{
	Use:   "get [order-id]",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		order, err := httpClient.GetOrderByID(orderID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		fmt.Printf("Order %d (%s)\n", order.ID, order.Status)
		fmt.Printf("Customer: %s\n", order.UserID)
		fmt.Printf("Total: %d.%02d\n", order.TotalCents/100, order.TotalCents%100)
		for _, item := range order.Items {
			fmt.Printf("  %dx %s @ %d.%02d\n",
				item.Quantity, item.ProductName, item.UnitPriceCents/100, item.UnitPriceCents%100)
		}
		return nil
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status [order-id] [status]",
	Short: "Move an order to a new status",
	Long:  `Valid statuses: pending, paid, shipped, cancelled. Cancelling returns reserved stock.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		order, err := httpClient.UpdateOrderStatus(orderID, args[1])
		if err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		fmt.Printf("✓ Order %d is now %s\n", order.ID, order.Status)
		return nil
	},
}

func init() {
	orderCmd.AddCommand(listOrderCmd)
	orderCmd.AddCommand(getOrderCmd)
	orderCmd.AddCommand(orderStatusCmd)

	listOrderCmd.Flags().Int("page", 1, "Page number")
	listOrderCmd.Flags().Int("page-size", 20, "Results per page")
}
