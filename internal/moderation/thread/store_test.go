package thread

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedThread(g *fakeGateway) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g.seed("root", "", "rev-1", "cust1", "Great kettle, heats fast.", t0)
	g.seed("c1", "root", "rev-1", "admin1", "Thanks for the kind words!", t0.Add(1*time.Minute))
	g.seed("c2", "c1", "rev-1", "cust1", "One question about descaling.", t0.Add(2*time.Minute))
	g.seed("c3", "root", "rev-1", "cust2", "Mine arrived dented.", t0.Add(3*time.Minute))
}

// verifyTreeShape asserts every non-root node appears exactly once among the
// children of the node its ParentID names.
func verifyTreeShape(t *testing.T, root *Comment) {
	t.Helper()
	Walk(root, func(c *Comment) {
		for _, child := range c.Children {
			assert.Equal(t, c.ID, child.ParentID, "child %s must point at its parent", child.ID)
		}
	})
	seen := make(map[string]int)
	Walk(root, func(c *Comment) { seen[c.ID]++ })
	for id, n := range seen {
		assert.Equal(t, 1, n, "comment %s must appear exactly once", id)
	}
}

func TestLoadBuildsThread(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)

	require.Equal(t, StatusEmpty, s.Status())
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))
	require.Equal(t, StatusReady, s.Status())

	th := s.Thread()
	require.NotNil(t, th)
	assert.Equal(t, "rev-1", th.ReviewID)
	assert.Equal(t, "root", th.Root.ID)
	assert.Equal(t, 4, Count(th.Root))
	require.Len(t, th.Root.Children, 2)
	assert.Equal(t, "c1", th.Root.Children[0].ID)
	assert.Equal(t, "c3", th.Root.Children[1].ID)
	verifyTreeShape(t, th.Root)
}

func TestLoadFailureInvalidates(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))
	require.NotNil(t, s.Thread())

	g.failFetchDesc = errors.New("connection reset")
	err := s.Reload(context.Background())
	require.Error(t, err)

	// A failed load never keeps the previous thread around.
	assert.Equal(t, StatusFailed, s.Status())
	assert.Nil(t, s.Thread())
	assert.ErrorContains(t, s.Err(), "connection reset")
}

func TestLoadMissingRoot(t *testing.T) {
	g := newFakeGateway()
	s := NewStore(g)

	err := s.Load(context.Background(), "rev-9", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StatusFailed, s.Status())
}

func TestAddReplyReloadsFromServer(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))
	descBefore := g.fetchDescCalls

	require.NoError(t, s.AddReply(context.Background(), "root", "We will look into it."))

	assert.Equal(t, 1, g.createCalls)
	assert.Equal(t, descBefore+1, g.fetchDescCalls, "a successful create re-fetches the thread")

	th := s.Thread()
	require.NotNil(t, th)
	require.Len(t, th.Root.Children, 3)
	assert.Equal(t, "We will look into it.", th.Root.Children[2].Content)
	verifyTreeShape(t, th.Root)
}

func TestAddReplyEmptyContent(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))

	err := s.AddReply(context.Background(), "root", "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Zero(t, g.createCalls, "validation happens before any remote call")
}

func TestAddReplyFailureLeavesThreadUntouched(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))
	before := s.Thread()
	descBefore := g.fetchDescCalls

	g.failCreate = errors.New("503 from comment service")
	err := s.AddReply(context.Background(), "root", "hello")
	require.Error(t, err)

	assert.Equal(t, StatusReady, s.Status())
	assert.Same(t, before, s.Thread(), "no local mutation and no reload on failure")
	assert.Equal(t, descBefore, g.fetchDescCalls)
}

func TestEditReloadsAndReflectsServer(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))

	require.NoError(t, s.Edit(context.Background(), "c1", "Thanks! Updated wording."))

	th := s.Thread()
	require.NotNil(t, th)
	c1 := FindByID(th.Root, "c1")
	require.NotNil(t, c1)
	assert.Equal(t, "Thanks! Updated wording.", c1.Content)
}

func TestEditAndDeleteRootRejected(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))

	assert.ErrorIs(t, s.Edit(context.Background(), "root", "hijack"), ErrRootComment)
	assert.ErrorIs(t, s.Delete(context.Background(), "root"), ErrRootComment)
	assert.Zero(t, g.updateCalls)
	assert.Zero(t, g.removeCalls)
}

func TestDeleteReflectsServerCascade(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))

	// c1 has a nested reply c2; the server cascades, the store just reloads.
	require.NoError(t, s.Delete(context.Background(), "c1"))

	th := s.Thread()
	require.NotNil(t, th)
	assert.Nil(t, FindByID(th.Root, "c1"))
	assert.Nil(t, FindByID(th.Root, "c2"))
	assert.NotNil(t, FindByID(th.Root, "c3"))
	verifyTreeShape(t, th.Root)
}

func TestMutationBeforeLoadRejected(t *testing.T) {
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)

	assert.ErrorIs(t, s.AddReply(context.Background(), "root", "hi"), ErrNoThread)
	assert.ErrorIs(t, s.Edit(context.Background(), "c1", "hi"), ErrNoThread)
	assert.ErrorIs(t, s.Delete(context.Background(), "c1"), ErrNoThread)
	assert.ErrorIs(t, s.Reload(context.Background()), ErrNoThread)
}

func TestStaleLoadResponseDiscarded(t *testing.T) {
	g := newFakeGateway()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g.seed("rootA", "", "rev-A", "cust1", "review A", t0)
	g.seed("rootB", "", "rev-B", "cust2", "review B", t0)
	s := NewStore(g)

	gateA := g.gate("rootA")
	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background(), "rev-A", "rootA") }()
	g.awaitInFlight("rootA")

	// B is selected while A is still in flight.
	require.NoError(t, s.Load(context.Background(), "rev-B", "rootB"))
	require.Equal(t, "rootB", s.Thread().Root.ID)

	// A's response finally arrives and must be dropped, not applied.
	close(gateA)
	require.NoError(t, <-done)

	th := s.Thread()
	require.NotNil(t, th)
	assert.Equal(t, "rootB", th.Root.ID)
	assert.Equal(t, StatusReady, s.Status())
}

func TestResetDiscardsInFlightLoad(t *testing.T) {
	g := newFakeGateway()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g.seed("rootA", "", "rev-A", "cust1", "review A", t0)
	s := NewStore(g)

	gateA := g.gate("rootA")
	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background(), "rev-A", "rootA") }()
	g.awaitInFlight("rootA")

	s.Reset()
	close(gateA)
	require.NoError(t, <-done)

	assert.Equal(t, StatusEmpty, s.Status())
	assert.Nil(t, s.Thread())
}
