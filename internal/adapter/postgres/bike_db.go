package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var bikeColumns = []string{"id", "serial_number", "color", "model_id"}

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func scanBike(row rowScanner) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.ID,
		&bike.SerialNumber,
		&bike.Color,
		&bike.ModelID,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) Create(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	id, err := insert(ctx, r.db, "bikes", bike.ID,
		[]string{"serial_number", "color", "model_id"},
		[]interface{}{bike.SerialNumber, bike.Color, bike.ModelID},
	)
	if err != nil {
		return nil, mapError("create", "bike", bike.ID, err)
	}

	created := *bike
	created.ID = id
	return &created, nil
}

func (r *BikeRepository) Read(ctx context.Context, id int) (*domain.Bike, error) {
	query, args, err := psql.Select(bikeColumns...).
		From("bikes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError("read", "bike", id, err)
	}
	return bike, nil
}

func (r *BikeRepository) ReadAll(ctx context.Context) ([]*domain.Bike, error) {
	query, args, err := psql.Select(bikeColumns...).
		From("bikes").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list", "bikes", 0, err)
	}
	defer rows.Close()

	bikes := make([]*domain.Bike, 0)
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) Update(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	err := update(ctx, r.db, "bikes", bike.ID, map[string]interface{}{
		"serial_number": bike.SerialNumber,
		"color":         bike.Color,
		"model_id":      bike.ModelID,
	})
	if err != nil {
		return nil, mapError("update", "bike", bike.ID, err)
	}

	updated := *bike
	return &updated, nil
}

func (r *BikeRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := deleteByID(ctx, r.db, "bikes", id)
	if err != nil {
		return false, mapError("delete", "bike", id, err)
	}
	return deleted, nil
}
