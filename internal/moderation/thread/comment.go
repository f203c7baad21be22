package thread

import "time"

// Comment is one node in a review's discussion tree. The root node holds the
// review's original text; every other node is a reply reachable from the root
// through ParentID.
type Comment struct {
	ID              string     `json:"id"`
	ReviewID        string     `json:"review_id"`
	ParentID        string     `json:"parent_id,omitempty"` // empty on the root
	AuthorID        string     `json:"author_id"`
	AuthorName      string     `json:"author_name"`
	AuthorAvatarURL string     `json:"author_avatar_url,omitempty"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
	Children        []*Comment `json:"children,omitempty"`
}

// Thread is the root comment of one review together with its full reply tree.
// It is replaced wholesale on every reload, never patched in place.
type Thread struct {
	ReviewID string
	Root     *Comment
}

// linkParents stamps every child's ParentID with its parent's ID so the tree
// shape invariant holds by construction, whatever the transport returned.
func linkParents(c *Comment) {
	for _, child := range c.Children {
		child.ParentID = c.ID
		linkParents(child)
	}
}
