package http

import (
	"context"
	"log/slog"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/generated/servers"
	"takeout/internal/pkg/page"
)

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists the use cases the HTTP interface dispatches to.
type Handlers struct {
	// Command handlers
	CreateAccount   CommandHandler[commands.CreateAccountCommand]
	DeleteAccount   CommandHandler[commands.DeleteAccountCommand]
	CreateOrder     CommandHandler[commands.CreateOrderCommand]
	AcceptOrder     CommandHandler[commands.AcceptOrderCommand]
	RequestDelivery CommandHandler[commands.RequestDeliveryCommand]
	ClaimOrder      CommandHandler[commands.ClaimOrderCommand]
	ConfirmDelivery CommandHandler[commands.ConfirmDeliveryCommand]
	ReviewOrder     CommandHandler[commands.ReviewOrderCommand]
	AddDish         CommandHandler[commands.AddDishCommand]
	UpdateDish      CommandHandler[commands.UpdateDishCommand]
	DeleteDish      CommandHandler[commands.DeleteDishCommand]
	UploadImage     QueryHandler[commands.UploadImageCommand, string]

	// Query handlers
	GetAccount          QueryHandler[queries.GetAccountQuery, queries.AccountView]
	ListAccounts        QueryHandler[queries.ListAccountsQuery, page.Page[queries.AccountView]]
	GetMenu             QueryHandler[queries.GetMenuQuery, page.Page[queries.DishView]]
	GetDish             QueryHandler[queries.GetDishQuery, queries.DishView]
	GetOrder            QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetOrderDetails     QueryHandler[queries.GetOrderDetailsQuery, queries.OrderView]
	GetOrderReview      QueryHandler[queries.GetOrderReviewQuery, queries.ReviewView]
	ListCustomerOrders  QueryHandler[queries.ListCustomerOrdersQuery, page.Page[queries.OrderView]]
	ListPendingOrders   QueryHandler[queries.ListPendingOrdersQuery, page.Page[queries.OrderView]]
	ListMerchantSales   QueryHandler[queries.ListMerchantSalesQuery, page.Page[queries.OrderView]]
	ListClaimableOrders QueryHandler[queries.ListClaimableOrdersQuery, page.Page[queries.OrderView]]
	ListDeliveries      QueryHandler[queries.ListCourierDeliveriesQuery, page.Page[queries.OrderView]]
}

// Server implements servers.ServerInterface. Mutations answer with the
// resource as it is after the commit, read back through the query side.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: h, logger: logger.With("component", "http_server")}
}
