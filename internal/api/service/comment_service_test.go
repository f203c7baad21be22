package service

import (
	"testing"
	"time"

	"storehub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- MOCK REPOSITORIES ---

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteMany(commentIDs []string) error {
	args := m.Called(commentIDs)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(commentID string) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByReview(reviewID string) ([]models.Comment, error) {
	args := m.Called(reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(reviewID string) (*models.Review, error) {
	args := m.Called(reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProduct(productID int64, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(productID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

// --- HELPERS ---

func strPtr(s string) *string { return &s }

// threadFixture builds the flat rows of one review's thread:
//
//	root
//	├── c1 (alice)
//	│   ├── c3 (bob)
//	│   └── c4 (alice)
//	└── c2 (bob)
func threadFixture() []models.Comment {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(id string, parent *string, user string, offset time.Duration) models.Comment {
		return models.Comment{
			ID:        id,
			ReviewID:  "review-1",
			ParentID:  parent,
			UserID:    user,
			Content:   "content " + id,
			CreatedAt: base.Add(offset),
			User:      models.User{ID: user, Username: user},
		}
	}
	return []models.Comment{
		mk("root", nil, "alice", 0),
		mk("c1", strPtr("root"), "alice", time.Minute),
		mk("c2", strPtr("root"), "bob", 2*time.Minute),
		mk("c3", strPtr("c1"), "bob", 3*time.Minute),
		mk("c4", strPtr("c1"), "alice", 4*time.Minute),
	}
}

// --- CREATE ---

func TestCommentService_Create(t *testing.T) {
	t.Run("RejectsUnknownReview", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		reviewRepo := new(MockReviewRepository)
		svc := NewCommentService(commentRepo, reviewRepo)

		reviewRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create("missing", "root", "alice", "hello")
		assert.ErrorIs(t, err, ErrReviewNotFound)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("RejectsParentFromAnotherReview", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		reviewRepo := new(MockReviewRepository)
		svc := NewCommentService(commentRepo, reviewRepo)

		reviewRepo.On("GetByID", "review-1").Return(&models.Review{ID: "review-1"}, nil)
		commentRepo.On("GetByID", "foreign-parent").Return(&models.Comment{
			ID:       "foreign-parent",
			ReviewID: "review-2",
		}, nil)

		_, err := svc.Create("review-1", "foreign-parent", "alice", "hello")
		assert.ErrorIs(t, err, ErrParentMismatch)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("CreatesReplyUnderParent", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		reviewRepo := new(MockReviewRepository)
		svc := NewCommentService(commentRepo, reviewRepo)

		reviewRepo.On("GetByID", "review-1").Return(&models.Review{ID: "review-1"}, nil)
		commentRepo.On("GetByID", "root").Return(&models.Comment{
			ID:       "root",
			ReviewID: "review-1",
		}, nil).Once()
		commentRepo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
			return c.ReviewID == "review-1" && c.ParentID != nil && *c.ParentID == "root" &&
				c.UserID == "alice" && c.Content == "hello"
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*models.Comment).ID = "new-id"
		}).Return(nil)
		commentRepo.On("GetByID", "new-id").Return(&models.Comment{
			ID:       "new-id",
			ReviewID: "review-1",
			ParentID: strPtr("root"),
			UserID:   "alice",
			Content:  "hello",
			User:     models.User{ID: "alice", Username: "alice"},
		}, nil)

		resp, err := svc.Create("review-1", "root", "alice", "hello")
		assert.NoError(t, err)
		assert.Equal(t, "new-id", resp.ID)
		assert.Equal(t, "alice", resp.AuthorName)
		commentRepo.AssertExpectations(t)
	})
}

// --- UPDATE ---

func TestCommentService_Update(t *testing.T) {
	t.Run("RootCommentIsProtected", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		commentRepo.On("GetByID", "root").Return(&models.Comment{
			ID:       "root",
			ReviewID: "review-1",
			UserID:   "alice",
		}, nil)

		_, err := svc.Update("root", "alice", "customer", "edited")
		assert.ErrorIs(t, err, ErrRootProtected)
	})

	t.Run("NonOwnerCustomerIsRejected", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		commentRepo.On("GetByID", "c1").Return(&models.Comment{
			ID:       "c1",
			ReviewID: "review-1",
			ParentID: strPtr("root"),
			UserID:   "alice",
		}, nil)

		_, err := svc.Update("c1", "bob", "customer", "edited")
		assert.ErrorIs(t, err, ErrNotCommentOwner)
		commentRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("ModeratorMayEditOthersComments", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		stored := &models.Comment{
			ID:       "c1",
			ReviewID: "review-1",
			ParentID: strPtr("root"),
			UserID:   "alice",
			Content:  "original",
			User:     models.User{ID: "alice", Username: "alice"},
		}
		commentRepo.On("GetByID", "c1").Return(stored, nil)
		commentRepo.On("Update", mock.MatchedBy(func(c *models.Comment) bool {
			return c.ID == "c1" && c.Content == "moderated"
		})).Return(nil)

		resp, err := svc.Update("c1", "bob", "moderator", "moderated")
		assert.NoError(t, err)
		assert.Equal(t, "moderated", resp.Content)
		commentRepo.AssertExpectations(t)
	})
}

// --- DELETE ---

func TestCommentService_Delete(t *testing.T) {
	t.Run("DeletesWholeSubtree", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		flat := threadFixture()
		commentRepo.On("GetByID", "c1").Return(&flat[1], nil)
		commentRepo.On("ListByReview", "review-1").Return(flat, nil)
		commentRepo.On("DeleteMany", []string{"c1", "c3", "c4"}).Return(nil)

		err := svc.Delete("c1", "alice", "customer")
		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("LeafDeleteTouchesOnlyItself", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		flat := threadFixture()
		commentRepo.On("GetByID", "c3").Return(&flat[3], nil)
		commentRepo.On("ListByReview", "review-1").Return(flat, nil)
		commentRepo.On("DeleteMany", []string{"c3"}).Return(nil)

		err := svc.Delete("c3", "bob", "customer")
		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("RootCommentIsProtected", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		flat := threadFixture()
		commentRepo.On("GetByID", "root").Return(&flat[0], nil)

		err := svc.Delete("root", "alice", "admin")
		assert.ErrorIs(t, err, ErrRootProtected)
		commentRepo.AssertNotCalled(t, "DeleteMany", mock.Anything)
	})

	t.Run("NotFoundMapsToSentinel", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		svc := NewCommentService(commentRepo, new(MockReviewRepository))

		commentRepo.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete("ghost", "alice", "customer")
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

// --- TREE BUILDING ---

func TestBuildCommentTree(t *testing.T) {
	t.Run("NestsRepliesUnderTheirParents", func(t *testing.T) {
		tree := BuildCommentTree(threadFixture(), "root")

		assert.Len(t, tree, 2)
		assert.Equal(t, "c1", tree[0].ID)
		assert.Equal(t, "c2", tree[1].ID)
		assert.Len(t, tree[0].Children, 2)
		assert.Equal(t, "c3", tree[0].Children[0].ID)
		assert.Equal(t, "c4", tree[0].Children[1].ID)
		assert.Empty(t, tree[1].Children)
	})

	t.Run("PreservesRowOrderAtEveryLevel", func(t *testing.T) {
		// Rows arrive in creation order from the repository; siblings
		// must come out in the same order.
		tree := BuildCommentTree(threadFixture(), "root")

		assert.True(t, tree[0].CreatedAt.Before(tree[1].CreatedAt))
		kids := tree[0].Children
		assert.True(t, kids[0].CreatedAt.Before(kids[1].CreatedAt))
	})

	t.Run("SubtreeOfInnerNode", func(t *testing.T) {
		tree := BuildCommentTree(threadFixture(), "c1")

		assert.Len(t, tree, 2)
		assert.Equal(t, "c3", tree[0].ID)
		assert.Equal(t, "c4", tree[1].ID)
	})

	t.Run("LeafHasNoDescendants", func(t *testing.T) {
		assert.Empty(t, BuildCommentTree(threadFixture(), "c2"))
	})
}

func TestSubtreeIDs(t *testing.T) {
	flat := threadFixture()

	assert.Equal(t, []string{"c1", "c3", "c4"}, subtreeIDs(flat, "c1"))
	assert.Equal(t, []string{"c3"}, subtreeIDs(flat, "c3"))
	assert.Equal(t, []string{"root", "c1", "c2", "c3", "c4"}, subtreeIDs(flat, "root"))
}
