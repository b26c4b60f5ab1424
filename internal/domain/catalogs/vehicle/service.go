package vehicle

import (
	"context"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/core/tx"
	"esteticar/internal/domain"
	"esteticar/pkg/logger"
	"esteticar/pkg/numerator"
)

// Repository extends the generic catalog repository with plate lookup.
type Repository interface {
	domain.CatalogRepository[*Vehicle]

	// GetByPlate finds a vehicle by normalized license plate.
	GetByPlate(ctx context.Context, plate string) (*Vehicle, error)

	// ListByCustomer returns all vehicles of a customer.
	ListByCustomer(ctx context.Context, customerID id.ID) ([]*Vehicle, error)
}

// CustomerChecker verifies customer existence without importing the
// customer package (wired from the customer service in cmd).
type CustomerChecker interface {
	Exists(ctx context.Context, customerID id.ID) (bool, error)
}

// Lookup resolves brand/model suggestions from an external vehicle table.
// Failures are advisory only and never block registration.
type Lookup interface {
	LookupByPlate(ctx context.Context, plate string) (brand, model string, year int, err error)
}

// Service provides vehicle business logic.
type Service struct {
	*domain.CatalogService[*Vehicle]
	repo      Repository
	customers CustomerChecker
	lookup    Lookup
}

// NewService creates the vehicle service and wires its hooks.
// lookup may be nil when no external vehicle-table API is configured.
func NewService(repo Repository, customers CustomerChecker, lookup Lookup, txManager tx.Manager, num *numerator.Service) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Vehicle]{
			Repo:       repo,
			TxManager:  txManager,
			Numerator:  num,
			EntityName: "vehicle",
			CodePrefix: "VEI",
		}),
		repo:      repo,
		customers: customers,
		lookup:    lookup,
	}

	s.Hooks().OnBeforeCreate(s.ensureCode)
	s.Hooks().OnBeforeCreate(s.checkCustomerExists)
	s.Hooks().OnBeforeCreate(s.checkDuplicatePlate)
	s.Hooks().OnBeforeCreate(s.fillFromLookup)
	s.Hooks().OnBeforeUpdate(s.checkCustomerExists)
	s.Hooks().OnBeforeUpdate(s.checkDuplicatePlate)

	return s
}

// GetByPlate finds a vehicle by plate (normalized before lookup).
func (s *Service) GetByPlate(ctx context.Context, plate string) (*Vehicle, error) {
	v, err := s.repo.GetByPlate(ctx, NormalizePlate(plate))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("vehicle", plate)
		}
		return nil, err
	}
	return v, nil
}

// ListByCustomer returns all vehicles owned by a customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID id.ID) ([]*Vehicle, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) ensureCode(ctx context.Context, v *Vehicle) error {
	if v.Code != "" {
		return nil
	}
	code, err := s.NextCode(ctx)
	if err != nil {
		return err
	}
	v.Code = code
	return nil
}

func (s *Service) checkCustomerExists(ctx context.Context, v *Vehicle) error {
	exists, err := s.customers.Exists(ctx, v.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("customer", v.CustomerID.String())
	}
	return nil
}

func (s *Service) checkDuplicatePlate(ctx context.Context, v *Vehicle) error {
	existing, err := s.repo.GetByPlate(ctx, v.LicensePlate)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != v.ID {
		return apperror.NewDuplicate("vehicle", "licensePlate", v.LicensePlate)
	}
	return nil
}

// fillFromLookup completes missing brand/model/year from the external
// vehicle table. Lookup failures only log a warning.
func (s *Service) fillFromLookup(ctx context.Context, v *Vehicle) error {
	if s.lookup == nil || (v.Brand != "" && v.Model != "") {
		return nil
	}

	brand, model, year, err := s.lookup.LookupByPlate(ctx, v.LicensePlate)
	if err != nil {
		logger.Warn(ctx, "vehicle lookup failed", "plate", v.LicensePlate, "error", err)
		return nil
	}

	if v.Brand == "" {
		v.Brand = brand
	}
	if v.Model == "" {
		v.Model = model
	}
	if v.Year == 0 {
		v.Year = year
	}
	v.Name = v.DisplayName()
	return nil
}
