package thread

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyWorkflow(t *testing.T) (*fakeGateway, *Store, *Workflow) {
	t.Helper()
	g := newFakeGateway()
	seedThread(g)
	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-1", "root"))
	return g, s, NewWorkflow(s)
}

func TestTwoStepDelete(t *testing.T) {
	g, _, w := readyWorkflow(t)

	// Confirming without a prior request must not reach the gateway.
	err := w.ConfirmDelete(context.Background(), "c3")
	assert.ErrorIs(t, err, ErrDeleteNotRequested)
	assert.Zero(t, g.removeCalls)

	// The first action only flips state, still no network effect.
	w.RequestDelete("c3")
	assert.Equal(t, ModeConfirmingDelete, w.State("c3").Mode)
	assert.Zero(t, g.removeCalls)

	// The second, explicit action performs the removal.
	require.NoError(t, w.ConfirmDelete(context.Background(), "c3"))
	assert.Equal(t, 1, g.removeCalls)
	assert.Equal(t, ModeViewing, w.State("c3").Mode)
}

func TestCancelDeleteNoNetwork(t *testing.T) {
	g, _, w := readyWorkflow(t)

	w.RequestDelete("c3")
	w.CancelDelete("c3")
	assert.Equal(t, ModeViewing, w.State("c3").Mode)
	assert.Zero(t, g.removeCalls)

	// After cancelling, a stray confirm is rejected again.
	assert.ErrorIs(t, w.ConfirmDelete(context.Background(), "c3"), ErrDeleteNotRequested)
}

func TestDeleteFailureKeepsConfirmingState(t *testing.T) {
	g, _, w := readyWorkflow(t)
	g.failRemove = errors.New("gateway timeout")

	w.RequestDelete("c3")
	err := w.ConfirmDelete(context.Background(), "c3")
	require.Error(t, err)
	assert.Equal(t, ModeConfirmingDelete, w.State("c3").Mode)
}

func TestEditSeedsAndSavesDraft(t *testing.T) {
	_, s, w := readyWorkflow(t)

	require.NoError(t, w.BeginEdit("c1"))
	st := w.State("c1")
	assert.Equal(t, ModeEditing, st.Mode)
	assert.Equal(t, "Thanks for the kind words!", st.Draft)

	require.NoError(t, w.UpdateDraft("c1", "Thanks! Happy to help."))
	require.NoError(t, w.SaveEdit(context.Background(), "c1"))

	assert.Equal(t, ModeViewing, w.State("c1").Mode)
	c1 := FindByID(s.Thread().Root, "c1")
	require.NotNil(t, c1)
	assert.Equal(t, "Thanks! Happy to help.", c1.Content)
}

func TestEditFailurePreservesDraft(t *testing.T) {
	g, _, w := readyWorkflow(t)

	require.NoError(t, w.BeginEdit("c1"))
	require.NoError(t, w.UpdateDraft("c1", "half-finished thought"))

	g.failUpdate = errors.New("500 from comment service")
	err := w.SaveEdit(context.Background(), "c1")
	require.Error(t, err)

	st := w.State("c1")
	assert.Equal(t, ModeEditing, st.Mode)
	assert.Equal(t, "half-finished thought", st.Draft)
}

func TestCancelEditNoNetwork(t *testing.T) {
	g, _, w := readyWorkflow(t)

	require.NoError(t, w.BeginEdit("c1"))
	require.NoError(t, w.UpdateDraft("c1", "discard me"))
	w.CancelEdit("c1")

	assert.Equal(t, ModeViewing, w.State("c1").Mode)
	assert.Zero(t, g.updateCalls)
	assert.ErrorIs(t, w.SaveEdit(context.Background(), "c1"), ErrNotEditing)
}

func TestSendReplyValidation(t *testing.T) {
	g, _, w := readyWorkflow(t)

	assert.False(t, w.CanSend(), "empty composer must disable send")
	assert.ErrorIs(t, w.SendReply(context.Background()), ErrEmptyContent)
	assert.Zero(t, g.createCalls)

	w.SetReplyText("  ")
	assert.False(t, w.CanSend())

	w.SetReplyText("Looking into this now.")
	assert.True(t, w.CanSend())
}

func TestSendReplyInFlightBlocksSecondSend(t *testing.T) {
	g, _, w := readyWorkflow(t)
	g.createStarted = make(chan struct{})
	g.createGate = make(chan struct{})

	w.SetReplyText("first send")
	done := make(chan error, 1)
	go func() { done <- w.SendReply(context.Background()) }()
	<-g.createStarted

	assert.False(t, w.CanSend(), "send stays disabled while the first is in flight")
	assert.ErrorIs(t, w.SendReply(context.Background()), ErrSendInFlight)

	close(g.createGate)
	require.NoError(t, <-done)
	assert.Empty(t, w.ReplyText(), "composer clears on success")
	assert.Equal(t, 1, g.createCalls)
}

func TestSendReplyFailureKeepsText(t *testing.T) {
	g, _, w := readyWorkflow(t)
	g.failCreate = errors.New("network down")

	w.SetReplyText("do not lose this")
	err := w.SendReply(context.Background())
	require.Error(t, err)
	assert.Equal(t, "do not lose this", w.ReplyText())
}

// The end-to-end moderation scenario: one customer review with one existing
// admin reply, then the admin sends a fresh reply through the composer.
func TestAdminReplyEndToEnd(t *testing.T) {
	g := newFakeGateway()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	g.seed("R", "", "rev-7", "cust1", "Solid product overall.", t0)
	g.seed("C1", "R", "rev-7", "admin1", "Glad you like it.", t0.Add(100*time.Second))

	s := NewStore(g)
	require.NoError(t, s.Load(context.Background(), "rev-7", "R"))
	w := NewWorkflow(s)

	w.SetReplyText("Thanks!")
	require.NoError(t, w.SendReply(context.Background()))

	// The create targeted the root, and the thread was re-fetched.
	assert.Equal(t, 1, g.createCalls)
	assert.GreaterOrEqual(t, g.fetchDescCalls, 2)

	th := s.Thread()
	require.NotNil(t, th)
	require.Len(t, th.Root.Children, 2)
	assert.Equal(t, "C1", th.Root.Children[0].ID)
	c2 := th.Root.Children[1]
	assert.Equal(t, "Thanks!", c2.Content)
	assert.True(t, c2.CreatedAt.After(t0.Add(100*time.Second)))

	// The moderator's own latest reply is now the fresh one.
	latest := FindLatestByAuthor(th.Root, "admin1")
	require.NotNil(t, latest)
	assert.Equal(t, c2.ID, latest.ID)
}
