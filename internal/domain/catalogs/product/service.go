package product

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/logger"
	"esteticar/pkg/numerator"
)

// Repository extends the generic catalog repository with stock operations.
type Repository interface {
	domain.CatalogRepository[*Product]

	// AdjustStock atomically changes current_stock by delta and fails when
	// the result would go negative. Returns the new stock level.
	AdjustStock(ctx context.Context, productID id.ID, delta int) (int, error)
}

// Service provides product business logic.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates the product service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "product",
			CodePrefix: "PRD",
		}),
		repo: repo,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)

	return s
}

// AdjustStock applies a manual stock correction with an audit reason.
func (s *Service) AdjustStock(ctx context.Context, productID id.ID, delta int, reason string) (*Product, error) {
	if delta == 0 {
		return nil, apperror.NewValidation("delta cannot be zero").
			WithDetail("field", "delta")
	}
	if reason == "" {
		return nil, apperror.NewValidation("reason is required").
			WithDetail("field", "reason")
	}

	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	newStock, err := s.repo.AdjustStock(ctx, productID, delta)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock adjusted",
		"product_id", productID.String(),
		"delta", delta,
		"new_stock", newStock,
		"reason", reason,
	)

	p.CurrentStock = newStock
	return p, nil
}

// Decrement reserves stock for a sale item. Fails with INSUFFICIENT_STOCK
// when not enough units are available.
func (s *Service) Decrement(ctx context.Context, productID id.ID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.CurrentStock < quantity {
		return apperror.NewInsufficientStock(productID.String(), quantity, p.CurrentStock)
	}

	_, err = s.repo.AdjustStock(ctx, productID, -quantity)
	return err
}

// Restore returns stock after a sale is cancelled.
func (s *Service) Restore(ctx context.Context, productID id.ID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	_, err := s.repo.AdjustStock(ctx, productID, quantity)
	return err
}

func (s *Service) ensureCode(ctx context.Context, p *Product) error {
	if p.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	p.Code = code
	return nil
}
