package repository

import (
	"context"
	"errors"

	"fleetops/internal/domain/driver"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DriverRepository struct {
	db db.DBTX
}

func NewDriverRepository(dbtx db.DBTX) *DriverRepository {
	return &DriverRepository{db: dbtx}
}

// FirstAvailableForUpdate picks the available driver with the lowest id under
// a row lock, so concurrent preparations cannot grab the same driver.
func (r *DriverRepository) FirstAvailableForUpdate(ctx context.Context) (*driver.Driver, error) {
	const q = `
SELECT id, name, status
FROM drivers
WHERE status = 'Available'
ORDER BY id
LIMIT 1
FOR UPDATE
`
	var id uuid.UUID
	var name, status string
	if err := r.db.QueryRow(ctx, q).Scan(&id, &name, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no available driver", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load available driver", err)
	}
	return driver.ReconstructDriver(id, name, driver.Status(status)), nil
}

func (r *DriverRepository) Save(ctx context.Context, d *driver.Driver) error {
	const q = `UPDATE drivers SET status = $2 WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, d.ID(), d.Status().String()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update driver", err)
	}
	return nil
}
