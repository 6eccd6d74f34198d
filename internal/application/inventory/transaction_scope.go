package inventory

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
)

// TransactionScope provides atomic execution of multiple repository
// operations. Implementations guarantee that either every operation
// performed through the supplied repositories commits, or none do.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories that participate in
// stock-mutating transactions, all bound to the same unit of work.
type TransactionalRepositories interface {
	StockRepo() inventory.StockRepository
	BatchRepo() inventory.BatchRepository
	ReceptionRepo() inventory.ReceptionRepository
	RecipeRepo() catalog.RecipeRepository
	PackagingRepo() catalog.PackagingRepository
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope executes the function without transaction
// semantics. Intended for tests that wire mock repositories.
type NoOpTransactionScope struct {
	Repos TransactionalRepositories
}

// Execute calls fn directly with the configured repositories.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.Repos)
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
