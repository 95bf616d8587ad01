package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"cookbook/internal/domain/repository"
	mockRepo "cookbook/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// expectTransaction makes txManager run the callback against a factory that
// hands out the given repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, users repository.UserRepository, recipes repository.RecipeRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if users != nil {
				factory.EXPECT().UserRepo().Return(users).Maybe()
			}
			if recipes != nil {
				factory.EXPECT().RecipeRepo().Return(recipes).Maybe()
			}

			return fn(factory)
		}).
		Once()
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
