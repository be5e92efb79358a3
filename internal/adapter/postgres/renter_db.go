package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var renterColumns = []string{"id", "last_name", "first_name", "middle_name", "phone_number"}

type RenterRepository struct {
	db *sql.DB
}

func NewRenterRepository(db *sql.DB) *RenterRepository {
	return &RenterRepository{db: db}
}

func scanRenter(row rowScanner) (*domain.Renter, error) {
	renter := &domain.Renter{}
	if err := row.Scan(
		&renter.ID,
		&renter.LastName,
		&renter.FirstName,
		&renter.MiddleName,
		&renter.PhoneNumber,
	); err != nil {
		return nil, err
	}
	return renter, nil
}

func (r *RenterRepository) Create(ctx context.Context, renter *domain.Renter) (*domain.Renter, error) {
	id, err := insert(ctx, r.db, "renters", renter.ID,
		renterColumns[1:],
		[]interface{}{renter.LastName, renter.FirstName, renter.MiddleName, renter.PhoneNumber},
	)
	if err != nil {
		return nil, mapError("create", "renter", renter.ID, err)
	}

	created := *renter
	created.ID = id
	return &created, nil
}

func (r *RenterRepository) Read(ctx context.Context, id int) (*domain.Renter, error) {
	query, args, err := psql.Select(renterColumns...).
		From("renters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	renter, err := scanRenter(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError("read", "renter", id, err)
	}
	return renter, nil
}

func (r *RenterRepository) ReadAll(ctx context.Context) ([]*domain.Renter, error) {
	query, args, err := psql.Select(renterColumns...).
		From("renters").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list", "renters", 0, err)
	}
	defer rows.Close()

	renters := make([]*domain.Renter, 0)
	for rows.Next() {
		renter, err := scanRenter(rows)
		if err != nil {
			return nil, err
		}
		renters = append(renters, renter)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return renters, nil
}

func (r *RenterRepository) Update(ctx context.Context, renter *domain.Renter) (*domain.Renter, error) {
	err := update(ctx, r.db, "renters", renter.ID, map[string]interface{}{
		"last_name":    renter.LastName,
		"first_name":   renter.FirstName,
		"middle_name":  renter.MiddleName,
		"phone_number": renter.PhoneNumber,
	})
	if err != nil {
		return nil, mapError("update", "renter", renter.ID, err)
	}

	updated := *renter
	return &updated, nil
}

func (r *RenterRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := deleteByID(ctx, r.db, "renters", id)
	if err != nil {
		return false, mapError("delete", "renter", id, err)
	}
	return deleted, nil
}
