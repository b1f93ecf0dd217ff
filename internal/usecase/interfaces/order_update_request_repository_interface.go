package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=order_update_request_repository_interface.go -destination=mocks/order_update_request_repository_interface.go -package=mock_interfaces

// IOrderUpdateRequestRepository abstracts DynamoDB persistence for the side
// records created by the support branch (ORDER_UPDATE_REQUEST).

type IOrderUpdateRequestRepository interface {
	Create(ctx context.Context, req entities.OrderUpdateRequest) (entities.OrderUpdateRequest, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderUpdateRequest, error)
}
