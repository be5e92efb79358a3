package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var bikeModelColumns = []string{
	"id",
	"bike_type",
	"wheel_size",
	"max_passenger_weight",
	"bike_weight",
	"brake_type",
	"model_year",
	"price_per_hour",
}

type BikeModelRepository struct {
	db *sql.DB
}

func NewBikeModelRepository(db *sql.DB) *BikeModelRepository {
	return &BikeModelRepository{db: db}
}

func scanBikeModel(row rowScanner) (*domain.BikeModel, error) {
	var bikeType int
	model := &domain.BikeModel{}
	err := row.Scan(
		&model.ID,
		&bikeType,
		&model.WheelSize,
		&model.MaxPassengerWeight,
		&model.BikeWeight,
		&model.BrakeType,
		&model.ModelYear,
		&model.PricePerHour,
	)
	if err != nil {
		return nil, err
	}
	model.BikeType = domain.BikeType(bikeType)
	return model, nil
}

func (r *BikeModelRepository) Create(ctx context.Context, model *domain.BikeModel) (*domain.BikeModel, error) {
	id, err := insert(ctx, r.db, "bike_models", model.ID,
		bikeModelColumns[1:],
		[]interface{}{
			int(model.BikeType),
			model.WheelSize,
			model.MaxPassengerWeight,
			model.BikeWeight,
			model.BrakeType,
			model.ModelYear,
			model.PricePerHour,
		},
	)
	if err != nil {
		return nil, mapError("create", "bike model", model.ID, err)
	}

	created := *model
	created.ID = id
	return &created, nil
}

func (r *BikeModelRepository) Read(ctx context.Context, id int) (*domain.BikeModel, error) {
	query, args, err := psql.Select(bikeModelColumns...).
		From("bike_models").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	model, err := scanBikeModel(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError("read", "bike model", id, err)
	}
	return model, nil
}

func (r *BikeModelRepository) ReadAll(ctx context.Context) ([]*domain.BikeModel, error) {
	query, args, err := psql.Select(bikeModelColumns...).
		From("bike_models").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list", "bike models", 0, err)
	}
	defer rows.Close()

	models := make([]*domain.BikeModel, 0)
	for rows.Next() {
		model, err := scanBikeModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}

func (r *BikeModelRepository) Update(ctx context.Context, model *domain.BikeModel) (*domain.BikeModel, error) {
	err := update(ctx, r.db, "bike_models", model.ID, map[string]interface{}{
		"bike_type":            int(model.BikeType),
		"wheel_size":           model.WheelSize,
		"max_passenger_weight": model.MaxPassengerWeight,
		"bike_weight":          model.BikeWeight,
		"brake_type":           model.BrakeType,
		"model_year":           model.ModelYear,
		"price_per_hour":       model.PricePerHour,
	})
	if err != nil {
		return nil, mapError("update", "bike model", model.ID, err)
	}

	updated := *model
	return &updated, nil
}

func (r *BikeModelRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := deleteByID(ctx, r.db, "bike_models", id)
	if err != nil {
		return false, mapError("delete", "bike model", id, err)
	}
	return deleted, nil
}
