package thread

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the target comment (or the thread root) no longer
	// exists on the server.
	ErrNotFound = errors.New("comment not found")

	// ErrEmptyContent is raised client-side, before any remote call is made.
	ErrEmptyContent = errors.New("comment content must not be empty")

	// ErrNoThread means the store holds no loaded thread to operate on.
	ErrNoThread = errors.New("no thread loaded")

	// ErrRootComment guards the review's own text: it is owned by the review
	// workflow and cannot be edited or deleted through the thread store.
	ErrRootComment = errors.New("the root comment cannot be modified here")
)

// Gateway is the remote comment service as seen by the thread store. The
// storefront API implements it over REST (cmd/cli/command/client); tests use
// an in-memory fake. Anything the gateway returns beyond the errors above is
// treated as a transport failure.
type Gateway interface {
	// FetchByID returns a single comment without its children expanded.
	FetchByID(ctx context.Context, id string) (*Comment, error)

	// FetchDescendants returns the nested reply trees below rootID,
	// excluding the root itself.
	FetchDescendants(ctx context.Context, rootID string) ([]*Comment, error)

	// Create posts a new reply under parentID within reviewID.
	Create(ctx context.Context, parentID, content, reviewID string) (*Comment, error)

	// Update replaces the content of an existing comment.
	Update(ctx context.Context, id, content string) (*Comment, error)

	// Remove deletes a comment. Cascade behavior for replies is decided by
	// the server; the store only reflects whatever tree comes back.
	Remove(ctx context.Context, id string) error
}
