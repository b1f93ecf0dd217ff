package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=customer_profile_repository_interface.go -destination=mocks/customer_profile_repository_interface.go -package=mock_interfaces

// ICustomerProfileRepository resolves an authenticated user to their saved
// profile. A missing profile is the zero value, not an error.

type ICustomerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error)
}
