package ports

import (
	"context"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Accounts carry the saved sender profile used to seed new drafts.
type AccountRepository interface {
	// Add persists a new account to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
