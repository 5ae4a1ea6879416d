package quiz

import (
	"testing"

	"Backend-BrainBattle/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockQuizService is a mock implementation of the quiz authoring service
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) UpdateQuiz(id string, callerID primitive.ObjectID, callerRole string, patch *models.UpdateQuizRequest) (*models.Quiz, error) {
	args := m.Called(id, callerID, callerRole, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizService) DeleteQuiz(id string, callerID primitive.ObjectID, callerRole string) (int64, error) {
	args := m.Called(id, callerID, callerRole)
	return args.Get(0).(int64), args.Error(1)
}

// TestUpdateQuizOwnership: update is admin-only AND owner-only. An admin who
// does not own the quiz is rejected.
func TestUpdateQuizOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	otherAdmin := primitive.NewObjectID()
	quizID := primitive.NewObjectID().Hex()
	patch := &models.UpdateQuizRequest{Title: strPtr("New")}

	mockService := new(MockQuizService)

	updated := &models.Quiz{Title: "New", CreatedBy: owner}
	mockService.On("UpdateQuiz", quizID, owner, models.RoleAdmin, patch).Return(updated, nil)
	mockService.On("UpdateQuiz", quizID, otherAdmin, models.RoleAdmin, patch).
		Return(nil, models.NewForbiddenError("Only the quiz owner can update it"))
	mockService.On("UpdateQuiz", quizID, otherAdmin, models.RoleUser, patch).
		Return(nil, models.NewForbiddenError("Forbidden"))

	t.Run("TestOwnerCanUpdate", func(t *testing.T) {
		quiz, err := mockService.UpdateQuiz(quizID, owner, models.RoleAdmin, patch)

		assert.NoError(t, err)
		assert.Equal(t, "New", quiz.Title)
	})

	t.Run("TestOtherAdminForbidden", func(t *testing.T) {
		quiz, err := mockService.UpdateQuiz(quizID, otherAdmin, models.RoleAdmin, patch)

		assert.Nil(t, quiz)
		assertForbidden(t, err)
	})

	t.Run("TestNonAdminForbidden", func(t *testing.T) {
		quiz, err := mockService.UpdateQuiz(quizID, otherAdmin, models.RoleUser, patch)

		assert.Nil(t, quiz)
		assertForbidden(t, err)
	})

	mockService.AssertExpectations(t)
}

// TestDeleteQuizOwnership mirrors the update rule for deletion.
func TestDeleteQuizOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	otherAdmin := primitive.NewObjectID()
	quizID := primitive.NewObjectID().Hex()

	mockService := new(MockQuizService)

	mockService.On("DeleteQuiz", quizID, owner, models.RoleAdmin).Return(int64(3), nil)
	mockService.On("DeleteQuiz", quizID, otherAdmin, models.RoleAdmin).
		Return(int64(0), models.NewForbiddenError("Only the quiz owner can delete it"))

	t.Run("TestOwnerCanDeleteWithCascadeCount", func(t *testing.T) {
		count, err := mockService.DeleteQuiz(quizID, owner, models.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("TestOtherAdminForbidden", func(t *testing.T) {
		_, err := mockService.DeleteQuiz(quizID, otherAdmin, models.RoleAdmin)

		assertForbidden(t, err)
	})

	mockService.AssertExpectations(t)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	svcErr, ok := err.(*models.ServiceError)
	assert.True(t, ok)
	assert.Equal(t, models.ErrForbidden, svcErr.Kind)
}
