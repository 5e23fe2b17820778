package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewVisitorRepository returns a VisitorRepository bound to the current transaction.
	NewVisitorRepository() VisitorRepository

	// NewOnboardingRepository returns an OnboardingRepository bound to the current transaction.
	NewOnboardingRepository() OnboardingRepository
}
