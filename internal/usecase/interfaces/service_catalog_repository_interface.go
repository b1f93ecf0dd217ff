package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=service_catalog_repository_interface.go -destination=mocks/service_catalog_repository_interface.go -package=mock_interfaces

// IServiceCatalogRepository abstracts the catalog of purchasable document
// services. The catalog is externally owned; the conversation core only
// reads it.
//
// ListActive must return services in deterministic catalog order (position),
// which the recommendation fallback relies on.

type IServiceCatalogRepository interface {
	ListActive(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}
