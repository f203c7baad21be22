package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storehub/internal/api/dto"
	"storehub/internal/api/handler"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(reviewID, parentID, userID, content string) (*dto.CommentResponse, error) {
	args := m.Called(reviewID, parentID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Update(commentID, userID, role, content string) (*dto.CommentResponse, error) {
	args := m.Called(commentID, userID, role, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(commentID, userID, role string) error {
	args := m.Called(commentID, userID, role)
	return args.Error(0)
}

func (m *MockCommentService) GetByID(commentID string) (*dto.CommentResponse, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) GetDescendants(rootCommentID string) ([]dto.CommentResponse, error) {
	args := m.Called(rootCommentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

// --- SETUP ---

func mockAuthMiddleware(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", userID)
		c.Set("role", role)
		c.Next()
	}
}

func setupCommentRouter(mockService *MockCommentService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCommentHandler(mockService)

	api := r.Group("/api")
	api.Use(mockAuthMiddleware(userID, role))
	h.RegisterRoutes(api)
	return r
}

// --- TESTS ---

func TestCommentHandler_Create(t *testing.T) {
	t.Run("PostsReply", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		mockService.On("Create", "review-1", "11111111-1111-1111-1111-111111111111", "alice", "hello").
			Return(&dto.CommentResponse{ID: "new-id", Content: "hello"}, nil)

		body, _ := json.Marshal(dto.CreateCommentDTO{
			ParentID: "11111111-1111-1111-1111-111111111111",
			Content:  "hello",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/reviews/review-1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CommentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "new-id", resp.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("RejectsMissingContent", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		body := []byte(`{"parent_id": "11111111-1111-1111-1111-111111111111"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/reviews/review-1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ParentFromAnotherReviewIs422", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		mockService.On("Create", "review-1", "22222222-2222-2222-2222-222222222222", "alice", "hello").
			Return(nil, service.ErrParentMismatch)

		body, _ := json.Marshal(dto.CreateCommentDTO{
			ParentID: "22222222-2222-2222-2222-222222222222",
			Content:  "hello",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/reviews/review-1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCommentHandler_GetDescendants(t *testing.T) {
	t.Run("ReturnsNestedForest", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		forest := []dto.CommentResponse{
			{ID: "c1", Children: []dto.CommentResponse{{ID: "c3"}}},
			{ID: "c2"},
		}
		mockService.On("GetDescendants", "root").Return(forest, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/comments/root/descendants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.CommentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "c3", resp[0].Children[0].ID)
	})

	t.Run("UnknownRootIs404", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		mockService.On("GetDescendants", "ghost").Return(nil, service.ErrCommentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/comments/ghost/descendants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_Update(t *testing.T) {
	t.Run("NonOwnerIs403", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "bob", "customer")

		mockService.On("Update", "c1", "bob", "customer", "edited").
			Return(nil, service.ErrNotCommentOwner)

		body, _ := json.Marshal(dto.UpdateCommentDTO{Content: "edited"})
		req := httptest.NewRequest(http.MethodPut, "/api/comments/c1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("RootCommentIs422", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "admin")

		mockService.On("Update", "root", "alice", "admin", "edited").
			Return(nil, service.ErrRootProtected)

		body, _ := json.Marshal(dto.UpdateCommentDTO{Content: "edited"})
		req := httptest.NewRequest(http.MethodPut, "/api/comments/root", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	t.Run("OwnerDeletes", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "customer")

		mockService.On("Delete", "c1", "alice", "customer").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/comments/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("UnknownCommentIs404", func(t *testing.T) {
		mockService := new(MockCommentService)
		r := setupCommentRouter(mockService, "alice", "moderator")

		mockService.On("Delete", "ghost", "alice", "moderator").
			Return(service.ErrCommentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/comments/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
