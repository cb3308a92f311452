package repository

import (
	"context"

	"monastery-guide/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StatusRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewStatusRepository(db *pgxpool.Pool, logger *zap.Logger) *StatusRepository {
	return &StatusRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	query := squirrel.Insert("status_checks").
		Columns("id", "client_name", "timestamp").
		Values(check.ID, check.ClientName, check.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *StatusRepository) List(ctx context.Context) ([]*models.StatusCheck, error) {
	query := squirrel.Select("id", "client_name", "timestamp").
		From("status_checks").
		OrderBy("timestamp ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*models.StatusCheck
	for rows.Next() {
		var check models.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, &check)
	}
	return checks, rows.Err()
}
