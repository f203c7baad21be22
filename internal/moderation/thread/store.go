package thread

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Status tracks the lifecycle of the store's thread:
// Empty -> Loading -> (Ready | Failed), and back through Loading on every
// mutation. There is no Ready-to-Ready edge that skips Loading - a mutation
// is always observably a full reload.
type Status int

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store holds the thread of exactly one review (or none) and mediates every
// read and write against it. Consistency comes from reload-after-write: a
// successful mutation re-fetches the whole thread instead of patching the
// in-memory tree, so the visible state is always a recent reflection of the
// server. Overlapping mutations are not queued or cancelled; each triggers
// its own reload and the newest reload wins.
type Store struct {
	gw Gateway

	mu       sync.Mutex
	status   Status
	reviewID string
	rootID   string
	gen      uint64 // bumped per Load; stale responses are discarded
	thread   *Thread
	err      error
}

func NewStore(gw Gateway) *Store {
	return &Store{gw: gw}
}

// Load replaces the current thread with the one rooted at rootID. The root
// comment and its descendants are fetched concurrently; neither request
// depends on the other. If a newer Load (or Reset) starts while this one is
// in flight, the late result is discarded rather than applied.
func (s *Store) Load(ctx context.Context, reviewID, rootID string) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.status = StatusLoading
	s.reviewID = reviewID
	s.rootID = rootID
	s.thread = nil
	s.err = nil
	s.mu.Unlock()

	var (
		wg          sync.WaitGroup
		root        *Comment
		descendants []*Comment
		rootErr     error
		descErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		root, rootErr = s.gw.FetchByID(ctx, rootID)
	}()
	go func() {
		defer wg.Done()
		descendants, descErr = s.gw.FetchDescendants(ctx, rootID)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// A newer Load took over while this one was in flight. Its result,
		// success or failure, belongs to an abandoned thread.
		return nil
	}

	if rootErr != nil {
		return s.fail(fmt.Errorf("fetch root comment %s: %w", rootID, rootErr))
	}
	if descErr != nil {
		// A partially loaded thread is worse than none: invalidate instead
		// of keeping whatever was visible before.
		return s.fail(fmt.Errorf("fetch descendants of %s: %w", rootID, descErr))
	}

	root.ParentID = ""
	root.Children = descendants
	linkParents(root)

	s.thread = &Thread{ReviewID: reviewID, Root: root}
	s.status = StatusReady
	return nil
}

// Reload re-runs Load with the currently selected review and root.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	reviewID, rootID := s.reviewID, s.rootID
	s.mu.Unlock()

	if rootID == "" {
		return ErrNoThread
	}
	return s.Load(ctx, reviewID, rootID)
}

// AddReply creates a new comment under parentID and refreshes the thread on
// success. On failure the thread is left exactly as it was: no local tree
// edit ever happens, so there is no partial mutation to undo.
func (s *Store) AddReply(ctx context.Context, parentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return ErrNoThread
	}
	reviewID, rootID, gen := s.reviewID, s.rootID, s.gen
	s.mu.Unlock()

	if _, err := s.gw.Create(ctx, parentID, content, reviewID); err != nil {
		return fmt.Errorf("create reply under %s: %w", parentID, err)
	}
	return s.reloadIfCurrent(ctx, reviewID, rootID, gen)
}

// Edit replaces a comment's content and refreshes the thread on success.
func (s *Store) Edit(ctx context.Context, commentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return ErrNoThread
	}
	if commentID == s.rootID {
		s.mu.Unlock()
		return ErrRootComment
	}
	reviewID, rootID, gen := s.reviewID, s.rootID, s.gen
	s.mu.Unlock()

	if _, err := s.gw.Update(ctx, commentID, content); err != nil {
		return fmt.Errorf("update comment %s: %w", commentID, err)
	}
	return s.reloadIfCurrent(ctx, reviewID, rootID, gen)
}

// Delete removes a comment and refreshes the thread on success. Whether the
// server cascades the removal to replies is its decision; the reload shows
// whatever tree it settled on.
func (s *Store) Delete(ctx context.Context, commentID string) error {
	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return ErrNoThread
	}
	if commentID == s.rootID {
		s.mu.Unlock()
		return ErrRootComment
	}
	reviewID, rootID, gen := s.reviewID, s.rootID, s.gen
	s.mu.Unlock()

	if err := s.gw.Remove(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	return s.reloadIfCurrent(ctx, reviewID, rootID, gen)
}

// Reset drops the thread, e.g. when the moderator moves to another review.
// Bumping the generation makes any in-flight load discard itself.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusEmpty
	s.reviewID = ""
	s.rootID = ""
	s.thread = nil
	s.err = nil
}

// Status reports where the store is in its Empty/Loading/Ready/Failed cycle.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Thread returns the loaded thread, or nil unless the store is Ready.
// Callers must treat it as a read-only snapshot; it is replaced, not
// mutated, by the next reload.
func (s *Store) Thread() *Thread {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return nil
	}
	return s.thread
}

// Err returns the failure recorded by the most recent load, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) fail(err error) error {
	s.status = StatusFailed
	s.thread = nil
	s.err = err
	return err
}

// reloadIfCurrent refreshes the thread after a successful write, unless the
// store has moved on to a different thread in the meantime.
func (s *Store) reloadIfCurrent(ctx context.Context, reviewID, rootID string, gen uint64) error {
	s.mu.Lock()
	if s.gen != gen || s.rootID != rootID {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	return s.Load(ctx, reviewID, rootID)
}
