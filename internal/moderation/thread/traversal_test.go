package thread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree() *Comment {
	at := func(sec int) time.Time {
		return time.Date(2026, 3, 1, 10, 0, sec, 0, time.UTC)
	}
	return &Comment{
		ID: "root", AuthorID: "U1", CreatedAt: at(1),
		Children: []*Comment{
			{
				ID: "a", ParentID: "root", AuthorID: "U2", CreatedAt: at(2),
				Children: []*Comment{
					{ID: "a1", ParentID: "a", AuthorID: "U1", CreatedAt: at(3)},
				},
			},
			{ID: "b", ParentID: "root", AuthorID: "U2", CreatedAt: at(4)},
		},
	}
}

func TestFindLatestByAuthor(t *testing.T) {
	tree := buildTestTree()

	// U1 wrote the root at t=1 and a1 at t=3: the later one wins.
	got := FindLatestByAuthor(tree, "U1")
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)

	got = FindLatestByAuthor(tree, "U2")
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	assert.Nil(t, FindLatestByAuthor(tree, "U3"))
	assert.Nil(t, FindLatestByAuthor(nil, "U1"))
}

func TestFindLatestByAuthorTieBreak(t *testing.T) {
	same := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)
	tree := &Comment{
		ID: "root", AuthorID: "cust1", CreatedAt: same.Add(-time.Hour),
		Children: []*Comment{
			{ID: "first", ParentID: "root", AuthorID: "mod", CreatedAt: same},
			{ID: "second", ParentID: "root", AuthorID: "mod", CreatedAt: same},
		},
	}

	// Identical timestamps resolve to the node seen first in pre-order, and
	// the answer never flips between calls.
	for i := 0; i < 10; i++ {
		got := FindLatestByAuthor(tree, "mod")
		require.NotNil(t, got)
		assert.Equal(t, "first", got.ID)
	}
}

func TestFindLatestByAuthorDeterministic(t *testing.T) {
	tree := buildTestTree()
	first := FindLatestByAuthor(tree, "U1")
	for i := 0; i < 5; i++ {
		assert.Same(t, first, FindLatestByAuthor(tree, "U1"))
	}
}

func TestFindByID(t *testing.T) {
	tree := buildTestTree()

	got := FindByID(tree, "a1")
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ParentID)

	assert.Same(t, tree, FindByID(tree, "root"))
	assert.Nil(t, FindByID(tree, "missing"))
	assert.Nil(t, FindByID(nil, "root"))
}

func TestWalkPreOrder(t *testing.T) {
	tree := buildTestTree()
	var order []string
	Walk(tree, func(c *Comment) { order = append(order, c.ID) })
	assert.Equal(t, []string{"root", "a", "a1", "b"}, order)
	assert.Equal(t, 4, Count(tree))
	assert.Zero(t, Count(nil))
}
