package repository

import (
	"context"
	"errors"
	"fmt"

	"monastery-guide/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var monasteryColumns = []string{
	"id", "name", "location", "district", "altitude", "tradition",
	"description", "founded", "architecture", "spiritual_significance",
	"main_image", "gallery_images", "panoramic_images", "latitude", "longitude",
	"highlights", "visiting_hours", "entrance_fee", "accessibility",
	"cultural_importance", "festivals", "travel_info", "created_at",
}

// distinctColumns whitelists the columns the distinct-value listing may touch.
var distinctColumns = map[string]bool{
	"district":  true,
	"tradition": true,
}

// MonasteryFilter narrows a listing. All supplied filters are conjoined;
// matching is case-insensitive substring.
type MonasteryFilter struct {
	District  string
	Tradition string
	Search    string
}

type MonasteryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMonasteryRepository(db *pgxpool.Pool, logger *zap.Logger) *MonasteryRepository {
	return &MonasteryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MonasteryRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("monasteries").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MonasteryRepository) Create(ctx context.Context, m *models.Monastery) error {
	query := squirrel.Insert("monasteries").
		Columns(monasteryColumns...).
		Values(monasteryValues(m)...).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *MonasteryRepository) CreateBatch(ctx context.Context, monasteries []*models.Monastery) error {
	if len(monasteries) == 0 {
		return nil
	}

	builder := squirrel.Insert("monasteries").
		Columns(monasteryColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, m := range monasteries {
		builder = builder.Values(monasteryValues(m)...)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *MonasteryRepository) List(ctx context.Context, filter MonasteryFilter) ([]*models.Monastery, error) {
	query := squirrel.Select(monasteryColumns...).
		From("monasteries").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.District != "" {
		query = query.Where(squirrel.ILike{"district": "%" + filter.District + "%"})
	}
	if filter.Tradition != "" {
		query = query.Where(squirrel.ILike{"tradition": "%" + filter.Tradition + "%"})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var monasteries []*models.Monastery
	for rows.Next() {
		m, err := scanMonastery(rows)
		if err != nil {
			return nil, err
		}
		monasteries = append(monasteries, m)
	}
	return monasteries, rows.Err()
}

func (r *MonasteryRepository) GetByID(ctx context.Context, id string) (*models.Monastery, error) {
	query := squirrel.Select(monasteryColumns...).
		From("monasteries").
		Where(squirrel.Eq{"id": id}).
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

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanMonastery(rows)
}

// ListDistinct returns the sorted distinct values of one whitelisted column.
func (r *MonasteryRepository) ListDistinct(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q is not listable", column)
	}

	query := squirrel.Select("DISTINCT " + column).
		From("monasteries").
		OrderBy(column + " ASC").
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

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func monasteryValues(m *models.Monastery) []any {
	return []any{
		m.ID, m.Name, m.Location, m.District, m.Altitude, m.Tradition,
		m.Description, m.Founded, m.Architecture, m.SpiritualSignificance,
		m.MainImage, m.GalleryImages, m.PanoramicImages,
		m.Coordinates.Lat, m.Coordinates.Lng,
		m.Highlights, m.VisitingHours, m.EntranceFee, m.Accessibility,
		m.CulturalImportance, m.Festivals, m.TravelInfo, m.CreatedAt,
	}
}

func scanMonastery(rows pgx.Rows) (*models.Monastery, error) {
	var m models.Monastery
	if err := rows.Scan(
		&m.ID, &m.Name, &m.Location, &m.District, &m.Altitude, &m.Tradition,
		&m.Description, &m.Founded, &m.Architecture, &m.SpiritualSignificance,
		&m.MainImage, &m.GalleryImages, &m.PanoramicImages,
		&m.Coordinates.Lat, &m.Coordinates.Lng,
		&m.Highlights, &m.VisitingHours, &m.EntranceFee, &m.Accessibility,
		&m.CulturalImportance, &m.Festivals, &m.TravelInfo, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
