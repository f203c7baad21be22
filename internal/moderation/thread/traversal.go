package thread

// Pure read-only helpers over a thread tree. These never fail: an empty or
// nil tree simply produces the zero answer.

// Walk visits every comment in the tree in pre-order (node before children,
// children in stored order).
func Walk(root *Comment, visit func(*Comment)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children {
		Walk(child, visit)
	}
}

// FindLatestByAuthor returns the comment with the greatest CreatedAt among
// those written by authorID, or nil when the author has none in the tree.
// Ties on CreatedAt keep the node encountered first in the pre-order walk,
// so repeated calls on the same tree always return the same node. This backs
// the moderator's "edit my latest reply" action without a dedicated server
// endpoint; the O(n) walk is fine because a thread is one review's
// discussion.
func FindLatestByAuthor(root *Comment, authorID string) *Comment {
	var latest *Comment
	Walk(root, func(c *Comment) {
		if c.AuthorID != authorID {
			return
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	})
	return latest
}

// FindByID returns the comment with the given id, or nil.
func FindByID(root *Comment, id string) *Comment {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if c := FindByID(child, id); c != nil {
			return c
		}
	}
	return nil
}

// Count returns the number of comments in the tree, root included.
func Count(root *Comment) int {
	n := 0
	Walk(root, func(*Comment) { n++ })
	return n
}
