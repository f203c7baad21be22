package command

// thread.go drives review discussion threads for moderators. It hosts
// the in-memory thread store and workflow over the REST comment API:
// the thread is loaded once, mutations go to the server, and the local
// copy is reloaded so the console always shows server truth.

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"storehub/cmd/cli/authentication"
	"storehub/cmd/cli/command/client"
	"storehub/internal/moderation/thread"

	"github.com/spf13/cobra"
)

var threadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Review thread moderation commands",
	Long: `Moderate the discussion thread attached to a product review.
Threads are loaded from the API into a local store; every reply, edit
or delete round-trips through the server and reloads the thread.`,
}

// loadThread resolves a review to its root comment and fills a store.
func loadThread(ctx context.Context, reviewID string) (*thread.Store, error) {
	httpClient := GetAuthenticatedClient()
	review, err := httpClient.GetReviewByID(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	store := thread.NewStore(client.NewCommentGateway(httpClient))
	if err := store.Load(ctx, reviewID, review.RootCommentID); err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	return store, nil
}

var showThreadCmd = &cobra.Command{
	Use:   "show [review-id]",
	Short: "Show a review's discussion thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadThread(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		th := store.Thread()
		fmt.Printf("Thread for review %s (%d comments):\n", th.ReviewID, thread.Count(th.Root))
		printComment(th.Root, 0)
		return nil
	},
}

var replyThreadCmd = &cobra.Command{
	Use:   "reply [review-id] [content]",
	Short: "Post a staff reply at the top level of a review's thread",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := loadThread(ctx, args[0])
		if err != nil {
			return err
		}

		workflow := thread.NewWorkflow(store)
		workflow.SetReplyText(strings.Join(args[1:], " "))
		if !workflow.CanSend() {
			return fmt.Errorf("reply text is empty")
		}
		if err := workflow.SendReply(ctx); err != nil {
			return fmt.Errorf("failed to send reply: %w", err)
		}

		fmt.Println("✓ Reply posted!")
		printComment(store.Thread().Root, 0)
		return nil
	},
}

var replyToThreadCmd = &cobra.Command{
	Use:   "reply-to [review-id] [comment-id] [content]",
	Short: "Reply to a specific comment in a review's thread",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := loadThread(ctx, args[0])
		if err != nil {
			return err
		}

		content := strings.Join(args[2:], " ")
		if err := store.AddReply(ctx, args[1], content); err != nil {
			return fmt.Errorf("failed to post reply: %w", err)
		}

		fmt.Println("✓ Reply posted!")
		printComment(store.Thread().Root, 0)
		return nil
	},
}

var editLatestCmd = &cobra.Command{
	Use:   "edit-latest [review-id] [content]",
	Short: "Edit your most recent comment in a review's thread",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		creds, err := authentication.GetTokens()
		if err != nil {
			return fmt.Errorf("not logged in: %w", err)
		}

		store, err := loadThread(ctx, args[0])
		if err != nil {
			return err
		}

		latest := thread.FindLatestByAuthor(store.Thread().Root, creds.UserID)
		if latest == nil {
			return fmt.Errorf("you have no comments in this thread")
		}

		workflow := thread.NewWorkflow(store)
		if err := workflow.BeginEdit(latest.ID); err != nil {
			return fmt.Errorf("failed to start edit: %w", err)
		}
		if err := workflow.UpdateDraft(latest.ID, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		if err := workflow.SaveEdit(ctx, latest.ID); err != nil {
			return fmt.Errorf("failed to save edit: %w", err)
		}

		fmt.Printf("✓ Comment %s updated!\n", latest.ID)
		return nil
	},
}

var deleteThreadCommentCmd = &cobra.Command{
	Use:   "delete [review-id] [comment-id]",
	Short: "Delete a comment and its replies (asks for confirmation)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := loadThread(ctx, args[0])
		if err != nil {
			return err
		}

		commentID := args[1]
		target := thread.FindByID(store.Thread().Root, commentID)
		if target == nil {
			return fmt.Errorf("comment %s not found in this thread", commentID)
		}

		workflow := thread.NewWorkflow(store)
		workflow.RequestDelete(commentID)

		subtree := thread.Count(target)
		fmt.Printf("Delete comment by %s (%d comments including replies)? [y/N]: ", target.AuthorName, subtree)

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				workflow.CancelDelete(commentID)
				fmt.Println("Cancelled.")
				return nil
			}
		} else {
			fmt.Println("y")
		}

		if err := workflow.ConfirmDelete(ctx, commentID); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		fmt.Printf("✓ Comment %s deleted!\n", commentID)
		printComment(store.Thread().Root, 0)
		return nil
	},
}

func printComment(c *thread.Comment, depth int) {
	if c == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s[%s] %s (%s):\n", indent, c.ID, c.AuthorName, c.CreatedAt.Format("2006-01-02 15:04"))
	for _, line := range strings.Split(c.Content, "\n") {
		fmt.Printf("%s  %s\n", indent, line)
	}
	for _, child := range c.Children {
		printComment(child, depth+1)
	}
}

func init() {
	threadCmd.AddCommand(showThreadCmd)
	threadCmd.AddCommand(replyThreadCmd)
	threadCmd.AddCommand(replyToThreadCmd)
	threadCmd.AddCommand(editLatestCmd)
	threadCmd.AddCommand(deleteThreadCommentCmd)

	deleteThreadCommentCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
