package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"esteticar/internal/core/apperror"
	"esteticar/internal/core/id"
	"esteticar/internal/domain/catalogs/vehicle"
	"esteticar/internal/infrastructure/storage/postgres"
)

const vehicleTable = "cat_vehicles"

// VehicleRepo implements vehicle.Repository.
type VehicleRepo struct {
	*BaseCatalogRepo[*vehicle.Vehicle]
}

// NewVehicleRepo creates a new vehicle repository.
func NewVehicleRepo(txManager *postgres.TxManager) *VehicleRepo {
	return &VehicleRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*vehicle.Vehicle](
			txManager,
			vehicleTable,
			postgres.ExtractDBColumns[vehicle.Vehicle](),
			func() *vehicle.Vehicle { return &vehicle.Vehicle{} },
		),
	}
}

var _ vehicle.Repository = (*VehicleRepo)(nil)

// GetByPlate retrieves vehicle by normalized license plate.
func (r *VehicleRepo) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"license_plate": plate}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	v, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("vehicle", plate)
		}
		return nil, err
	}
	return v, nil
}

// ListByCustomer returns all vehicles of a customer, newest first.
func (r *VehicleRepo) ListByCustomer(ctx context.Context, customerID id.ID) ([]*vehicle.Vehicle, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("created_at DESC")

	return r.FindMany(ctx, q)
}
