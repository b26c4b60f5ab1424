package cashbook

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository is the cash movement persistence contract.
type Repository interface {
	Create(ctx context.Context, movement *Movement) error
	GetByID(ctx context.Context, movementID id.ID) (*Movement, error)
	Update(ctx context.Context, movement *Movement) error
	List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Movement], error)
	SetDeletionMark(ctx context.Context, movementID id.ID, marked bool) error
}

// Service provides cashbook business logic.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates the cashbook service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	return &Service{repo: repo, txManager: txManager, numerator: num}
}

// Create validates, numbers and persists a movement.
func (s *Service) Create(ctx context.Context, movement *Movement) error {
	if err := movement.Validate(ctx); err != nil {
		return err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CXA"), nil, movement.Date)
	if err != nil {
		return err
	}
	movement.Number = number

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, movement)
	})
}

// GetByID retrieves a movement.
func (s *Service) GetByID(ctx context.Context, movementID id.ID) (*Movement, error) {
	m, err := s.repo.GetByID(ctx, movementID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("cash movement", movementID.String())
		}
		return nil, err
	}
	return m, nil
}

// Update applies changes to a movement.
func (s *Service) Update(ctx context.Context, movement *Movement) error {
	if err := movement.Validate(ctx); err != nil {
		return err
	}
	movement.Touch()
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, movement)
	})
}

// List retrieves movements with filtering.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Movement], error) {
	return s.repo.List(ctx, f)
}

// Delete soft-deletes a movement.
func (s *Service) Delete(ctx context.Context, movementID id.ID) error {
	if _, err := s.GetByID(ctx, movementID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, movementID, true)
	})
}
