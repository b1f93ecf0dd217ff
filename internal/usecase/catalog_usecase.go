package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// maxRecommendations caps how many recommendation cards one turn emits.
const maxRecommendations = 3

// ICatalogUseCase exposes the service catalog to the conversation flow.
//
// Recommend is a keyword filter, not an NLU problem: case-insensitive
// substring match over name/category/description, falling back to the first
// catalog entries ("most popular") when nothing matches.

type ICatalogUseCase interface {
	Recommend(ctx context.Context, keyword string) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceCatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Recommend(ctx context.Context, keyword string) ([]entities.Service, error) {
	services, err := u.repo.ListActive(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed keyword=%q err=%v", keyword, err)
		return nil, err
	}

	// Repository order is not guaranteed by a Scan; catalog position is the
	// deterministic order the fallback depends on.
	sort.SliceStable(services, func(i, j int) bool { return services[i].Position < services[j].Position })

	needle := strings.ToLower(strings.TrimSpace(keyword))
	matched := make([]entities.Service, 0, len(services))
	if needle != "" {
		for _, s := range services {
			if strings.Contains(strings.ToLower(s.Name), needle) ||
				strings.Contains(strings.ToLower(s.Category), needle) ||
				strings.Contains(strings.ToLower(s.Description), needle) {
				matched = append(matched, s)
			}
		}
	}

	// No match is not an error: fall back to the most popular entries.
	if len(matched) == 0 {
		matched = services
	}
	if len(matched) > maxRecommendations {
		matched = matched[:maxRecommendations]
	}
	log.Printf("[catalog][usecase] recommend keyword=%q results=%d", keyword, len(matched))
	return matched, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}
