package accounts

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/numerator"
)

// Repository is the account persistence contract.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, accountID id.ID) (*Account, error)
	Update(ctx context.Context, account *Account) error
	List(ctx context.Context, kind Kind, f domain.ListFilter) (domain.ListResult[*Account], error)
	SetDeletionMark(ctx context.Context, accountID id.ID, marked bool) error
}

// Service provides account business logic.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates the accounts service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	return &Service{repo: repo, txManager: txManager, numerator: num}
}

// Create validates, numbers and persists an account.
func (s *Service) Create(ctx context.Context, account *Account) error {
	if err := account.Validate(ctx); err != nil {
		return err
	}

	prefix := "CTP"
	if account.Kind == KindReceivable {
		prefix = "CTR"
	}
	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(prefix), nil, account.Date)
	if err != nil {
		return err
	}
	account.Number = number

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, account)
	})
}

// GetByID retrieves an account.
func (s *Service) GetByID(ctx context.Context, accountID id.ID) (*Account, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("account", accountID.String())
		}
		return nil, err
	}
	return account, nil
}

// Update applies changes to a pending account.
func (s *Service) Update(ctx context.Context, account *Account) error {
	if err := account.Validate(ctx); err != nil {
		return err
	}
	account.Touch()
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, account)
	})
}

// List retrieves accounts of one kind with filtering.
func (s *Service) List(ctx context.Context, kind Kind, f domain.ListFilter) (domain.ListResult[*Account], error) {
	if !kind.Valid() {
		return domain.ListResult[*Account]{}, apperror.NewValidation("kind must be payable or receivable").
			WithDetail("field", "kind")
	}
	return s.repo.List(ctx, kind, f)
}

// Pay transitions a pending account to paid, stamping the payment date.
func (s *Service) Pay(ctx context.Context, accountID id.ID, when time.Time) (*Account, error) {
	account, err := s.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if when.IsZero() {
		when = time.Now().UTC()
	}
	if err := account.Pay(when); err != nil {
		return nil, err
	}
	account.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Cancel transitions a pending account to cancelled.
func (s *Service) Cancel(ctx context.Context, accountID id.ID) (*Account, error) {
	account, err := s.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.Cancel(); err != nil {
		return nil, err
	}
	account.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Delete soft-deletes an account.
func (s *Service) Delete(ctx context.Context, accountID id.ID) error {
	if _, err := s.GetByID(ctx, accountID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, accountID, true)
	})
}
