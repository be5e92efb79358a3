package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var rentalColumns = []string{"id", "start_time", "duration_hours", "bike_id", "renter_id"}

type RentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rental := &domain.Rental{}
	if err := row.Scan(
		&rental.ID,
		&rental.StartTime,
		&rental.DurationHours,
		&rental.BikeID,
		&rental.RenterID,
	); err != nil {
		return nil, err
	}
	rental.StartTime = rental.StartTime.UTC()
	return rental, nil
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	id, err := insert(ctx, r.db, "rentals", rental.ID,
		rentalColumns[1:],
		[]interface{}{rental.StartTime.UTC(), rental.DurationHours, rental.BikeID, rental.RenterID},
	)
	if err != nil {
		return nil, mapError("create", "rental", rental.ID, err)
	}

	created := *rental
	created.ID = id
	return &created, nil
}

func (r *RentalRepository) Read(ctx context.Context, id int) (*domain.Rental, error) {
	query, args, err := psql.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rental, err := scanRental(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError("read", "rental", id, err)
	}
	return rental, nil
}

func (r *RentalRepository) ReadAll(ctx context.Context) ([]*domain.Rental, error) {
	query, args, err := psql.Select(rentalColumns...).
		From("rentals").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list", "rentals", 0, err)
	}
	defer rows.Close()

	rentals := make([]*domain.Rental, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	err := update(ctx, r.db, "rentals", rental.ID, map[string]interface{}{
		"start_time":     rental.StartTime.UTC(),
		"duration_hours": rental.DurationHours,
		"bike_id":        rental.BikeID,
		"renter_id":      rental.RenterID,
	})
	if err != nil {
		return nil, mapError("update", "rental", rental.ID, err)
	}

	updated := *rental
	return &updated, nil
}

func (r *RentalRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := deleteByID(ctx, r.db, "rentals", id)
	if err != nil {
		return false, mapError("delete", "rental", id, err)
	}
	return deleted, nil
}
