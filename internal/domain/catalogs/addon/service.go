package addon

import (
	"context"

	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository is the addon persistence contract.
type Repository interface {
	domain.CatalogRepository[*Addon]

	// GetMany resolves a batch of addon IDs in one query.
	GetMany(ctx context.Context, ids []id.ID) ([]*Addon, error)
}

// Service provides addon business logic.
type Service struct {
	*domain.CatalogService[*Addon]
	repo Repository
}

// NewService creates the addon service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Addon]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "addon",
			CodePrefix: "ADC",
		}),
		repo: repo,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)

	return s
}

// GetMany resolves addon IDs in bulk (used when pricing service orders).
func (s *Service) GetMany(ctx context.Context, ids []id.ID) ([]*Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.GetMany(ctx, ids)
}

func (s *Service) ensureCode(ctx context.Context, a *Addon) error {
	if a.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	a.Code = code
	return nil
}
