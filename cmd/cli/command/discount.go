package command

import (
	"fmt"
	"strconv"
	"time"

	"storehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Discount code commands",
}

var listDiscountCmd = &cobra.Command{
	Use:   "list",
	Short: "List discount codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := GetAuthenticatedClient()
		discounts, err := httpClient.ListDiscounts()
		if err != nil {
			return fmt.Errorf("failed to list discounts: %w", err)
		}

		for _, d := range discounts {
			window := "always"
			if d.StartsAt != nil || d.EndsAt != nil {
				from, until := "...", "..."
				if d.StartsAt != nil {
					from = d.StartsAt.Format("2006-01-02")
				}
				if d.EndsAt != nil {
					until = d.EndsAt.Format("2006-01-02")
				}
				window = from + " to " + until
			}
			fmt.Printf("  [%d] %s: %d%% off (%s)\n", d.ID, d.Code, d.Percent, window)
		}
		return nil
	},
}

var createDiscountCmd = &cobra.Command{
	Use:   "create [code] [percent]",
	Short: "Create a discount code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid percent: %w", err)
		}

		req := client.CreateDiscountRequest{Code: args[0], Percent: percent}
		if starts, _ := cmd.Flags().GetString("starts"); starts != "" {
			t, err := time.Parse("2006-01-02", starts)
			if err != nil {
				return fmt.Errorf("invalid starts date: %w", err)
			}
			req.StartsAt = &t
		}
		if ends, _ := cmd.Flags().GetString("ends"); ends != "" {
			t, err := time.Parse("2006-01-02", ends)
			if err != nil {
				return fmt.Errorf("invalid ends date: %w", err)
			}
			req.EndsAt = &t
		}

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.CreateDiscount(&req)
		if err != nil {
			return fmt.Errorf("failed to create discount: %w", err)
		}

		fmt.Printf("✓ Discount %s created (%d%% off)!\n", result.Code, result.Percent)
		return nil
	},
}

var deleteDiscountCmd = &cobra.Command{
	Use:   "delete [discount-id]",
	Short: "Remove a discount code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		discountID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid discount ID: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		if err := httpClient.DeleteDiscount(discountID); err != nil {
			return fmt.Errorf("failed to delete discount: %w", err)
		}

		fmt.Printf("✓ Discount %d deleted!\n", discountID)
		return nil
	},
}

func init() {
	discountCmd.AddCommand(listDiscountCmd)
	discountCmd.AddCommand(createDiscountCmd)
	discountCmd.AddCommand(deleteDiscountCmd)

	createDiscountCmd.Flags().String("starts", "", "Validity start date (YYYY-MM-DD)")
	createDiscountCmd.Flags().String("ends", "", "Validity end date (YYYY-MM-DD)")
}
