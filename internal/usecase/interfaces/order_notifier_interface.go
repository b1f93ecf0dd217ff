package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=order_notifier_interface.go -destination=mocks/order_notifier_interface.go -package=mock_interfaces

// IOrderNotifier sends customer-facing emails about an order. Calls are
// best-effort: failures are logged by callers and never block the flow that
// triggered them.

type IOrderNotifier interface {
	OrderCreated(ctx context.Context, o entities.Order) error
	PaymentConfirmed(ctx context.Context, o entities.Order) error
}
