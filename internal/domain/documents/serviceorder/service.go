package serviceorder

import (
	"context"
	"time"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/core/types"
	"esteticar/internal/domain"
	"esteticar/internal/domain/catalogs/addon"
	"esteticar/internal/domain/payment"
	"esteticar/pkg/numerator"
)

// Repository is the service-order persistence contract. Addon lines are
// loaded and stored together with the order.
type Repository interface {
	Create(ctx context.Context, order *ServiceOrder) error
	GetByID(ctx context.Context, orderID id.ID) (*ServiceOrder, error)
	Update(ctx context.Context, order *ServiceOrder) error
	List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*ServiceOrder], error)
	SetDeletionMark(ctx context.Context, orderID id.ID, marked bool) error
}

// AddonResolver resolves addon registry records for pricing.
type AddonResolver interface {
	GetMany(ctx context.Context, ids []id.ID) ([]*addon.Addon, error)
}

// Service provides service-order business logic.
type Service struct {
	repo      Repository
	addons    AddonResolver
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates the service-order service.
func NewService(repo Repository, addons AddonResolver, txManager tx.Manager, num *numerator.Service) *Service {
	return &Service{
		repo:      repo,
		addons:    addons,
		txManager: txManager,
		numerator: num,
	}
}

// CreateInput carries caller-provided fields for a new order. Addon prices
// are resolved from the registry, never taken from the caller.
type CreateInput struct {
	Name      string
	Category  Category
	BasePrice string

	CustomerID *id.ID
	VehicleID  *id.ID
	DueDate    *time.Time
	Date       *time.Time
	Comment    string

	AddonIDs []id.ID
}

// Create builds, prices and persists a new pending service order.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ServiceOrder, error) {
	basePrice, err := parseMoney(in.BasePrice, "basePrice")
	if err != nil {
		return nil, err
	}

	order := New(in.Name, in.Category, basePrice)
	order.CustomerID = in.CustomerID
	order.VehicleID = in.VehicleID
	order.DueDate = in.DueDate
	order.Comment = in.Comment
	if in.Date != nil {
		order.Date = in.Date.UTC()
	}

	if err := s.attachAddons(ctx, order, in.AddonIDs); err != nil {
		return nil, err
	}
	order.RecomputeTotal()

	if err := order.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("OS"), nil, order.Date)
	if err != nil {
		return nil, err
	}
	order.Number = number

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateInput carries mutable fields for an existing order.
type UpdateInput struct {
	Name      *string
	Category  *Category
	BasePrice *string

	CustomerID *id.ID
	VehicleID  *id.ID
	DueDate    *time.Time
	Comment    *string

	// AddonIDs, when non-nil, replaces the full addon set.
	AddonIDs *[]id.ID
}

// Update applies changes to a pending order. Paid and cancelled orders
// are immutable.
func (s *Service) Update(ctx context.Context, orderID id.ID, in UpdateInput) (*ServiceOrder, error) {
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != payment.StatusPending {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"only pending service orders can be modified").
			WithDetail("status", string(order.PaymentStatus))
	}

	if in.Name != nil {
		order.Name = *in.Name
	}
	if in.Category != nil {
		order.Category = *in.Category
	}
	if in.BasePrice != nil {
		basePrice, err := parseMoney(*in.BasePrice, "basePrice")
		if err != nil {
			return nil, err
		}
		order.BasePrice = basePrice
	}
	if in.CustomerID != nil {
		order.CustomerID = in.CustomerID
	}
	if in.VehicleID != nil {
		order.VehicleID = in.VehicleID
	}
	if in.DueDate != nil {
		order.DueDate = in.DueDate
	}
	if in.Comment != nil {
		order.Comment = *in.Comment
	}
	if in.AddonIDs != nil {
		order.Addons = nil
		if err := s.attachAddons(ctx, order, *in.AddonIDs); err != nil {
			return nil, err
		}
	}
	order.RecomputeTotal()
	order.Touch()

	if err := order.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves a service order with its addon lines.
func (s *Service) GetByID(ctx context.Context, orderID id.ID) (*ServiceOrder, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("service order", orderID.String())
		}
		return nil, err
	}
	return order, nil
}

// List retrieves service orders with filtering.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*ServiceOrder], error) {
	return s.repo.List(ctx, f)
}

// Pay transitions a pending order to paid.
func (s *Service) Pay(ctx context.Context, orderID id.ID, method payment.Method) (*ServiceOrder, error) {
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Pay(method); err != nil {
		return nil, err
	}
	order.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel transitions a pending order to cancelled.
func (s *Service) Cancel(ctx context.Context, orderID id.ID) (*ServiceOrder, error) {
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}
	order.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Delete soft-deletes an order.
func (s *Service) Delete(ctx context.Context, orderID id.ID) error {
	if _, err := s.GetByID(ctx, orderID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, orderID, true)
	})
}

// attachAddons resolves addon IDs against the registry and copies name and
// price into typed lines.
func (s *Service) attachAddons(ctx context.Context, order *ServiceOrder, addonIDs []id.ID) error {
	if len(addonIDs) == 0 {
		return nil
	}

	resolved, err := s.addons.GetMany(ctx, addonIDs)
	if err != nil {
		return err
	}

	byID := make(map[id.ID]*addon.Addon, len(resolved))
	for _, a := range resolved {
		byID[a.ID] = a
	}

	for _, addonID := range addonIDs {
		a, ok := byID[addonID]
		if !ok {
			return apperror.NewNotFound("addon", addonID.String())
		}
		if !a.Active {
			return apperror.NewBusinessRule(apperror.CodeBusinessRule, "addon is inactive").
				WithDetail("addonId", addonID.String())
		}
		order.Addons = append(order.Addons, Line{
			ID:              id.New(),
			ServiceOrderID:  order.ID,
			AddonID:         a.ID,
			Name:            a.Name,
			AdditionalPrice: a.AdditionalPrice,
		})
	}
	return nil
}

func parseMoney(s, field string) (types.Money, error) {
	if s == "" {
		return types.Zero(), apperror.NewValidation(field + " is required").
			WithDetail("field", field)
	}
	m, err := types.NewMoneyFromString(s)
	if err != nil {
		return types.Zero(), apperror.NewValidation("invalid " + field).
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return m, nil
}
