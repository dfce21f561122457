// Package accountrepo stores accounts with gorm.
package accountrepo

import (
	"context"
	"errors"
	"strings"

	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add returns a ConflictError when the username is already taken.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("username", dto.Username, err)
		}
		return err
	}

	return nil
}

// GetByRole treats an account with a different role as missing.
func (r *GormAccountRepository) GetByRole(ctx context.Context, id kernel.UUID, role account.Role) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	notFound := errs.NewObjectNotFoundError(strings.ToLower(role.String()), id.String())

	var dto AccountDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND role = ?", id.Bytes(), int(role)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", id.String())
	}
	return nil
}
