package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commands",
	Long:  `Inspect product reviews. Use "thread" to moderate a review's discussion.`,
}

var listReviewCmd = &cobra.Command{
	Use:   "list [product-id]",
	Short: "List reviews for a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product ID: %w", err)
		}
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.ListReviewsByProduct(productID, page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}

		fmt.Printf("Reviews for product %d (page %d/%d):\n", productID, result.Page, result.TotalPages)
		for _, r := range result.Data {
			fmt.Printf("  [%s] %d/5 by %s (%s)\n",
				r.ID, r.Rating, r.AuthorName, r.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var getReviewCmd = &cobra.Command{
	Use:   "get [review-id]",
	Short: "Show one review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := GetAuthenticatedClient()
		review, err := httpClient.GetReviewByID(args[0])
		if err != nil {
			return fmt.Errorf("failed to get review: %w", err)
		}

		fmt.Printf("Review %s\n", review.ID)
		fmt.Printf("Product: %d\n", review.ProductID)
		fmt.Printf("Rating: %d/5 by %s\n", review.Rating, review.AuthorName)
		fmt.Printf("Thread root: %s\n", review.RootCommentID)
		return nil
	},
}

func init() {
	reviewCmd.AddCommand(listReviewCmd)
	reviewCmd.AddCommand(getReviewCmd)

	listReviewCmd.Flags().Int("page", 1, "Page number")
	listReviewCmd.Flags().Int("page-size", 20, "Results per page")
}
