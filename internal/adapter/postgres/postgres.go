package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// mapError turns driver failures into domain errors where the caller can act on them.
func mapError(op, entity string, id int, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23502", "23514":
			return fmt.Errorf("%w: %s", domain.ErrValidation, pqErr.Message)
		case "23503":
			return fmt.Errorf("%w: %s", domain.ErrReferenceNotFound, pqErr.Message)
		}
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// insert appends the id column when the caller supplies one and returns the stored id.
func insert(ctx context.Context, db *sql.DB, table string, id int, columns []string, values []interface{}) (int, error) {
	if id != 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]interface{}{id}, values...)
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", table, err)
	}

	var stored int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&stored); err != nil {
		return 0, err
	}

	if id != 0 {
		if err := resyncSequence(ctx, db, table); err != nil {
			return 0, err
		}
	}
	return stored, nil
}

// resyncSequence moves the SERIAL sequence past explicitly inserted ids.
func resyncSequence(ctx context.Context, db *sql.DB, table string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 1))`,
		table,
	)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("resync %s sequence: %w", table, err)
	}
	return nil
}

func deleteByID(ctx context.Context, db *sql.DB, table string, id int) (bool, error) {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete %s: %w", table, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// update runs an UPDATE ... WHERE id and reports ErrNoRows when nothing matched.
func update(ctx context.Context, db *sql.DB, table string, id int, set map[string]interface{}) error {
	query, args, err := psql.Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update %s: %w", table, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
