package ports

import (
	"context"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
)

type AccountRepository interface {
	// Add stores a new account. A taken username yields errs.ConflictError.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByRole loads an account that carries role. Missing accounts and
	// accounts with another role both yield errs.ObjectNotFoundError.
	GetByRole(ctx context.Context, id kernel.UUID, role account.Role) (*account.Account, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
