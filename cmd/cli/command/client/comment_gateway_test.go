package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storehub/internal/moderation/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayServer(t *testing.T, handler http.HandlerFunc) (*CommentGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := NewHTTPClient(srv.URL)
	httpClient.SetToken("test-token")
	return NewCommentGateway(httpClient), srv
}

func TestCommentGateway_FetchByID(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comments/c1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(CommentResponse{
			ID:         "c1",
			ReviewID:   "review-1",
			ParentID:   "root",
			AuthorID:   "alice",
			AuthorName: "alice",
			Content:    "hello",
		})
	})

	comment, err := gateway.FetchByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", comment.ID)
	assert.Equal(t, "alice", comment.AuthorName)
	assert.Equal(t, "root", comment.ParentID)
}

func TestCommentGateway_FetchByID_NotFound(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "comment not found"})
	})

	_, err := gateway.FetchByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, thread.ErrNotFound)
	assert.True(t, IsNotFound(err))
}

func TestCommentGateway_FetchDescendants(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comments/root/descendants", r.URL.Path)

		json.NewEncoder(w).Encode([]CommentResponse{
			{ID: "c1", Children: []CommentResponse{{ID: "c3"}}},
			{ID: "c2"},
		})
	})

	descendants, err := gateway.FetchDescendants(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, descendants, 2)
	require.Len(t, descendants[0].Children, 1)
	assert.Equal(t, "c3", descendants[0].Children[0].ID)
}

func TestCommentGateway_Create(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reviews/review-1/comments", r.URL.Path)

		var req CreateCommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "root", req.ParentID)
		assert.Equal(t, "a reply", req.Content)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CommentResponse{ID: "new-id", Content: req.Content})
	})

	comment, err := gateway.Create(context.Background(), "root", "a reply", "review-1")
	require.NoError(t, err)
	assert.Equal(t, "new-id", comment.ID)
}

func TestCommentGateway_Update_ServerError(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "you don't have permission to modify this comment"})
	})

	_, err := gateway.Update(context.Background(), "c1", "edited")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.False(t, IsNotFound(err))
}

func TestCommentGateway_Remove(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/comments/c1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "comment deleted successfully"})
	})

	assert.NoError(t, gateway.Remove(context.Background(), "c1"))
}

func TestCommentGateway_ContextCancellation(t *testing.T) {
	gateway, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CommentResponse{ID: "c1"})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchByID(ctx, "c1")
	assert.Error(t, err)
}
