package supplier

import (
	"context"

	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository is the supplier persistence contract.
type Repository interface {
	domain.CatalogRepository[*Supplier]
}

// Service provides supplier business logic.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo Repository
}

// NewService creates the supplier service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "supplier",
			CodePrefix: "FOR",
		}),
		repo: repo,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)

	return s
}

func (s *Service) ensureCode(ctx context.Context, sp *Supplier) error {
	if sp.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	sp.Code = code
	return nil
}
