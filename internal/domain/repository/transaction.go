package repository

import "context"

// TransactionManager runs a unit of work atomically. fn receives repositories
// bound to the transaction; a returned error or a panic rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RecipeRepo() RecipeRepository
}
