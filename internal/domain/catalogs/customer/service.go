package customer

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository extends the generic catalog repository with document lookup.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// GetByDocument finds a customer by normalized CPF/CNPJ.
	GetByDocument(ctx context.Context, document string) (*Customer, error)
}

// Service provides customer business logic.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates the customer service and wires its hooks.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "customer",
			CodePrefix: "CLI",
		}),
		repo: repo,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)
	s.Hooks().OnBeforeCreate(s.checkDuplicateDocument)
	s.Hooks().OnBeforeUpdate(s.checkDuplicateDocument)

	return s
}

func (s *Service) ensureCode(ctx context.Context, c *Customer) error {
	if c.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	c.Code = code
	return nil
}

// checkDuplicateDocument rejects a second customer with the same CPF/CNPJ.
func (s *Service) checkDuplicateDocument(ctx context.Context, c *Customer) error {
	if c.Document == "" {
		return nil
	}

	existing, err := s.repo.GetByDocument(ctx, c.Document)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewDuplicate("customer", "document", c.Document)
	}
	return nil
}
