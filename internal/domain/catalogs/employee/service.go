package employee

import (
	"context"
	"time"

	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository is the employee persistence contract.
type Repository interface {
	domain.CatalogRepository[*Employee]
}

// Service provides employee business logic.
type Service struct {
	*domain.CatalogService[*Employee]
	repo Repository
}

// NewService creates the employee service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "employee",
			CodePrefix: "FUN",
		}),
		repo: repo,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)

	return s
}

// Dismiss sets the dismissal date and deactivates the employee in one update.
func (s *Service) Dismiss(ctx context.Context, employeeID id.ID, when time.Time) (*Employee, error) {
	e, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	e.Dismiss(when.UTC())
	e.Touch()
	if err := s.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ensureCode(ctx context.Context, e *Employee) error {
	if e.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	e.Code = code
	return nil
}
