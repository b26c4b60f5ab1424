package sale

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/core/types"
	"esteticar/internal/domain"
	"esteticar/internal/domain/payment"
	"esteticar/pkg/numerator"
)

// Repository is the sale persistence contract. Items are loaded and stored
// together with the sale.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)
	Update(ctx context.Context, sale *Sale) error
	List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Sale], error)
	SetDeletionMark(ctx context.Context, saleID id.ID, marked bool) error
}

// StockAdjuster moves product stock inside the sale transaction.
type StockAdjuster interface {
	Decrement(ctx context.Context, productID id.ID, quantity int) error
	Restore(ctx context.Context, productID id.ID, quantity int) error
}

// Service provides sale business logic.
type Service struct {
	repo      Repository
	stock     StockAdjuster
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates the sale service.
func NewService(repo Repository, stock StockAdjuster, txManager tx.Manager, num *numerator.Service) *Service {
	return &Service{
		repo:      repo,
		stock:     stock,
		txManager: txManager,
		numerator: num,
	}
}

// ItemInput is a caller-provided sale line.
type ItemInput struct {
	Type        ItemType
	ProductID   *id.ID
	ServiceID   *id.ID
	Description string
	Quantity    int
	UnitPrice   string
	Discount    string
}

// CreateInput carries caller-provided fields for a new sale. Declared
// totals, when present, are validated against the derived ones.
type CreateInput struct {
	CustomerID    id.ID
	VehicleID     *id.ID
	Items         []ItemInput
	Discount      string
	PaymentMethod payment.Method
	Date          *time.Time
	Comment       string

	// DeclaredSubtotal/DeclaredTotal are optional client-side figures.
	DeclaredSubtotal *string
	DeclaredTotal    *string
}

// Create builds, validates and persists a sale, decrementing product
// stock inside the same transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Sale, error) {
	sl := New(in.CustomerID)
	sl.VehicleID = in.VehicleID
	sl.PaymentMethod = in.PaymentMethod
	sl.Comment = in.Comment
	if in.Date != nil {
		sl.Date = in.Date.UTC()
	}

	discount, err := parseMoneyOrZero(in.Discount, "discount")
	if err != nil {
		return nil, err
	}
	sl.Discount = discount

	for _, itemIn := range in.Items {
		item, err := buildItem(sl.ID, itemIn)
		if err != nil {
			return nil, err
		}
		sl.Items = append(sl.Items, item)
	}

	sl.RecomputeTotals()

	if in.DeclaredSubtotal != nil && in.DeclaredTotal != nil {
		declaredSub, err := parseMoneyOrZero(*in.DeclaredSubtotal, "subtotal")
		if err != nil {
			return nil, err
		}
		declaredTotal, err := parseMoneyOrZero(*in.DeclaredTotal, "total")
		if err != nil {
			return nil, err
		}
		if err := sl.CheckDeclaredTotals(declaredSub, declaredTotal); err != nil {
			return nil, err
		}
	}

	if err := sl.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("VND"), nil, sl.Date)
	if err != nil {
		return nil, err
	}
	sl.Number = number

	// Stock moves and the insert commit or roll back together.
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, item := range sl.Items {
			if item.Type == ItemProduct {
				if err := s.stock.Decrement(ctx, *item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return s.repo.Create(ctx, sl)
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// GetByID retrieves a sale with its items.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	sl, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, err
	}
	return sl, nil
}

// List retrieves sales with filtering.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Sale], error) {
	return s.repo.List(ctx, f)
}

// Pay transitions a pending sale to paid.
func (s *Service) Pay(ctx context.Context, saleID id.ID, method payment.Method) (*Sale, error) {
	sl, err := s.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sl.Pay(method); err != nil {
		return nil, err
	}
	sl.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, sl)
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// Cancel transitions a pending sale to cancelled and restores the stock
// its product items consumed, in one transaction.
func (s *Service) Cancel(ctx context.Context, saleID id.ID) (*Sale, error) {
	sl, err := s.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sl.Cancel(); err != nil {
		return nil, err
	}
	sl.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, item := range sl.Items {
			if item.Type == ItemProduct {
				if err := s.stock.Restore(ctx, *item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return s.repo.Update(ctx, sl)
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// Delete soft-deletes a pending sale. Paid sales are immutable.
func (s *Service) Delete(ctx context.Context, saleID id.ID) error {
	sl, err := s.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sl.PaymentStatus == payment.StatusPaid {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"paid sales cannot be deleted")
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, saleID, true)
	})
}

func buildItem(saleID id.ID, in ItemInput) (Item, error) {
	unitPrice, err := parseMoneyOrZero(in.UnitPrice, "unitPrice")
	if err != nil {
		return Item{}, err
	}
	discount, err := parseMoneyOrZero(in.Discount, "discount")
	if err != nil {
		return Item{}, err
	}

	item := Item{
		ID:          id.New(),
		SaleID:      saleID,
		Type:        in.Type,
		ProductID:   in.ProductID,
		ServiceID:   in.ServiceID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
	}
	item.Recompute()
	return item, nil
}

func parseMoneyOrZero(s, field string) (types.Money, error) {
	if s == "" {
		return types.Zero(), nil
	}
	m, err := types.NewMoneyFromString(s)
	if err != nil {
		return types.Zero(), apperror.NewValidation("invalid " + field).
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return m, nil
}
