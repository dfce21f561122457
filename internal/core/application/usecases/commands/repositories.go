// Package commands contains business operations that modify system state.
// Every handler runs inside one unit of work: validate the command, begin,
// load aggregates, apply the domain transition, persist, commit.
package commands

import (
	"context"

	"takeout/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderUoW is used by lifecycle transitions that touch a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW is used when a transition must also resolve accounts, such
	// as a merchant naming a courier.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// MenuUoW manages dishes together with the owning merchant account.
	MenuUoW interface {
		TxManager
		AccountRepoFactory
		DishRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// UoW spans every repository. Order placement uses it to resolve the
	// customer, the merchant and the menu in the same transaction that stores
	// the order.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	customer, err := uow.AccountRepository().GetByRole(ctx, id, account.Customer)
	//	// ...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
		DishRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
