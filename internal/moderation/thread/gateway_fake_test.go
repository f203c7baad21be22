package thread

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// fakeGateway is an in-memory comment service for tests. It keeps a flat
// map of comments, materializes descendant trees on demand, and supports
// error injection plus per-root gates for exercising in-flight overlap.
type fakeGateway struct {
	mu      sync.Mutex
	byID    map[string]*Comment
	orderID []string // insertion order, drives Children ordering
	nextID  int
	clock   time.Time

	fetchByIDCalls int
	fetchDescCalls int
	createCalls    int
	updateCalls    int
	removeCalls    int

	failFetchByID error
	failFetchDesc error
	failCreate    error
	failUpdate    error
	failRemove    error

	// When a gate exists for a root id, fetches for that root block until
	// the gate channel is closed. waiting reports each fetch that reached
	// the gate, so tests can tell when a load is truly in flight.
	gates   map[string]chan struct{}
	waiting map[string]chan struct{}

	// createStarted is signalled when Create begins, if non-nil.
	createStarted chan struct{}
	// createGate blocks Create until closed, if non-nil.
	createGate chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		byID:    make(map[string]*Comment),
		gates:   make(map[string]chan struct{}),
		waiting: make(map[string]chan struct{}),
		clock:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// seed inserts a comment directly, bypassing the gateway surface.
func (g *fakeGateway) seed(id, parentID, reviewID, authorID, content string, createdAt time.Time) *Comment {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := &Comment{
		ID:         id,
		ReviewID:   reviewID,
		ParentID:   parentID,
		AuthorID:   authorID,
		AuthorName: authorID,
		Content:    content,
		CreatedAt:  createdAt,
	}
	g.byID[id] = c
	g.orderID = append(g.orderID, id)
	return c
}

func (g *fakeGateway) gate(rootID string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := make(chan struct{})
	g.gates[rootID] = ch
	g.waiting[rootID] = make(chan struct{}, 2)
	return ch
}

// awaitInFlight blocks until at least one fetch for id is parked at its gate.
func (g *fakeGateway) awaitInFlight(id string) {
	g.mu.Lock()
	w := g.waiting[id]
	g.mu.Unlock()
	<-w
}

func (g *fakeGateway) waitGate(id string) {
	g.mu.Lock()
	ch := g.gates[id]
	w := g.waiting[id]
	g.mu.Unlock()
	if ch != nil {
		if w != nil {
			w <- struct{}{}
		}
		<-ch
	}
}

func (g *fakeGateway) FetchByID(ctx context.Context, id string) (*Comment, error) {
	g.waitGate(id)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetchByIDCalls++
	if g.failFetchByID != nil {
		return nil, g.failFetchByID
	}
	c, ok := g.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	cp.Children = nil
	return &cp, nil
}

func (g *fakeGateway) FetchDescendants(ctx context.Context, rootID string) ([]*Comment, error) {
	g.waitGate(rootID)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetchDescCalls++
	if g.failFetchDesc != nil {
		return nil, g.failFetchDesc
	}
	return g.childrenOf(rootID), nil
}

// childrenOf builds copies of the nested subtrees below parentID. Caller
// holds the lock.
func (g *fakeGateway) childrenOf(parentID string) []*Comment {
	var out []*Comment
	for _, id := range g.orderID {
		c := g.byID[id]
		if c == nil || c.ParentID != parentID {
			continue
		}
		cp := *c
		cp.Children = g.childrenOf(c.ID)
		out = append(out, &cp)
	}
	return out
}

func (g *fakeGateway) Create(ctx context.Context, parentID, content, reviewID string) (*Comment, error) {
	if g.createStarted != nil {
		g.createStarted <- struct{}{}
	}
	if g.createGate != nil {
		<-g.createGate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	if g.failCreate != nil {
		return nil, g.failCreate
	}
	if _, ok := g.byID[parentID]; !ok {
		return nil, ErrNotFound
	}
	g.nextID++
	g.clock = g.clock.Add(time.Second)
	c := &Comment{
		ID:         fmt.Sprintf("c-new-%d", g.nextID),
		ReviewID:   reviewID,
		ParentID:   parentID,
		AuthorID:   "admin1",
		AuthorName: "admin1",
		Content:    content,
		CreatedAt:  g.clock,
	}
	g.byID[c.ID] = c
	g.orderID = append(g.orderID, c.ID)
	cp := *c
	return &cp, nil
}

func (g *fakeGateway) Update(ctx context.Context, id, content string) (*Comment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	if g.failUpdate != nil {
		return nil, g.failUpdate
	}
	c, ok := g.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Content = content
	cp := *c
	cp.Children = nil
	return &cp, nil
}

func (g *fakeGateway) Remove(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeCalls++
	if g.failRemove != nil {
		return g.failRemove
	}
	if _, ok := g.byID[id]; !ok {
		return ErrNotFound
	}
	// Cascade to replies, the way the storefront API does it.
	g.removeSubtree(id)
	return nil
}

func (g *fakeGateway) removeSubtree(id string) {
	for _, childID := range g.orderID {
		c := g.byID[childID]
		if c != nil && c.ParentID == id {
			g.removeSubtree(childID)
		}
	}
	delete(g.byID, id)
}
