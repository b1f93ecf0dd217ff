package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Create must be conditional on the id not existing; the ledger call is the
// single source of truth for "order exists".

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatuses(ctx context.Context, id string, status entities.OrderStatus, payment entities.PaymentStatus) (entities.Order, error)
}
