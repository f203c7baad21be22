package thread

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrSendInFlight       = errors.New("a reply is already being sent")
	ErrNotEditing         = errors.New("comment is not in edit mode")
	ErrDeleteNotRequested = errors.New("delete has not been requested for this comment")
)

// Mode is the interaction state of a single rendered comment.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
	ModeConfirmingDelete
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	case ModeConfirmingDelete:
		return "confirming-delete"
	default:
		return "unknown"
	}
}

// ViewState is per-comment interaction state. It is transient: never
// persisted, and dropped whenever the thread reloads.
type ViewState struct {
	Mode  Mode
	Draft string // working text while Mode == ModeEditing
}

// Workflow sequences the moderation interactions (reply composer, in-place
// edit, two-step delete) into store calls and owns the transient view state.
// It never retries on failure; retry is the moderator clicking again.
type Workflow struct {
	store *Store

	mu        sync.Mutex
	states    map[string]*ViewState // keyed by comment id
	replyText string
	sending   bool
}

func NewWorkflow(store *Store) *Workflow {
	return &Workflow{
		store:  store,
		states: make(map[string]*ViewState),
	}
}

// State returns the interaction state of a comment; unknown comments are
// simply Viewing.
func (w *Workflow) State(commentID string) ViewState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.states[commentID]; ok {
		return *st
	}
	return ViewState{Mode: ModeViewing}
}

// --- reply composer ---

// SetReplyText updates the composer's working text.
func (w *Workflow) SetReplyText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replyText = text
}

func (w *Workflow) ReplyText() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.replyText
}

// CanSend reports whether the send action is enabled: non-empty text and no
// send already in flight for this thread.
func (w *Workflow) CanSend() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.TrimSpace(w.replyText) != "" && !w.sending
}

// SendReply posts the composer text as a top-level reply (attached to the
// thread root). On success the composer is cleared and the store is reloaded
// once more: the reply box cannot assume it shares a code path with the
// thread view, so it forces its own refresh on top of AddReply's.
func (w *Workflow) SendReply(ctx context.Context) error {
	w.mu.Lock()
	if w.sending {
		w.mu.Unlock()
		return ErrSendInFlight
	}
	text := w.replyText
	if strings.TrimSpace(text) == "" {
		w.mu.Unlock()
		return ErrEmptyContent
	}
	w.sending = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.sending = false
		w.mu.Unlock()
	}()

	th := w.store.Thread()
	if th == nil {
		return ErrNoThread
	}

	if err := w.store.AddReply(ctx, th.Root.ID, text); err != nil {
		// Keep the text so the moderator can re-send.
		return err
	}

	w.mu.Lock()
	w.replyText = ""
	w.states = make(map[string]*ViewState)
	w.mu.Unlock()

	return w.store.Reload(ctx)
}

// --- in-place edit ---

// BeginEdit switches a comment into edit mode, seeding the draft from its
// current content.
func (w *Workflow) BeginEdit(commentID string) error {
	th := w.store.Thread()
	if th == nil {
		return ErrNoThread
	}
	c := FindByID(th.Root, commentID)
	if c == nil {
		return ErrNotFound
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.states[commentID] = &ViewState{Mode: ModeEditing, Draft: c.Content}
	return nil
}

// UpdateDraft replaces the working text of a comment being edited.
func (w *Workflow) UpdateDraft(commentID, draft string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	st, ok := w.states[commentID]
	if !ok || st.Mode != ModeEditing {
		return ErrNotEditing
	}
	st.Draft = draft
	return nil
}

// CancelEdit discards the draft and returns to viewing. No network call.
func (w *Workflow) CancelEdit(commentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.states, commentID)
}

// SaveEdit submits the draft. Only a successful save leaves edit mode; on
// failure the comment stays in ModeEditing with the attempted draft intact
// so the moderator does not lose their work.
func (w *Workflow) SaveEdit(ctx context.Context, commentID string) error {
	w.mu.Lock()
	st, ok := w.states[commentID]
	if !ok || st.Mode != ModeEditing {
		w.mu.Unlock()
		return ErrNotEditing
	}
	draft := st.Draft
	w.mu.Unlock()

	if err := w.store.Edit(ctx, commentID, draft); err != nil {
		return err
	}

	w.mu.Lock()
	w.states = make(map[string]*ViewState)
	w.mu.Unlock()
	return nil
}

// --- two-step delete ---

// RequestDelete is the first of the two explicit actions a delete requires.
// It only flips the view state; nothing is sent to the server.
func (w *Workflow) RequestDelete(commentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.states[commentID] = &ViewState{Mode: ModeConfirmingDelete}
}

// CancelDelete backs out of a pending confirmation. No network call.
func (w *Workflow) CancelDelete(commentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.states[commentID]; ok && st.Mode == ModeConfirmingDelete {
		delete(w.states, commentID)
	}
}

// ConfirmDelete performs the actual removal, and only when RequestDelete was
// called first. A failed delete leaves the comment in its pre-attempt
// ConfirmingDelete state.
func (w *Workflow) ConfirmDelete(ctx context.Context, commentID string) error {
	w.mu.Lock()
	st, ok := w.states[commentID]
	if !ok || st.Mode != ModeConfirmingDelete {
		w.mu.Unlock()
		return ErrDeleteNotRequested
	}
	w.mu.Unlock()

	if err := w.store.Delete(ctx, commentID); err != nil {
		return err
	}

	w.mu.Lock()
	w.states = make(map[string]*ViewState)
	w.mu.Unlock()
	return nil
}
