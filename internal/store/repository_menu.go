package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/models"
)

// psql builds all dynamically constructed queries with PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// menuRepository is the PostgreSQL-backed implementation of [MenuRepository].
type menuRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuRepository constructs a [MenuRepository] backed by the provided
// database connection and logger.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
	}
}

func (r *menuRepository) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "title", "price", "inventory").
		From(models.MenuItem{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenuItems").Msg("error executing menu list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Price, &item.Inventory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *menuRepository) GetMenuItem(ctx context.Context, id int64) (models.MenuItem, error) {
	query, args, err := psql.
		Select("id", "title", "price", "inventory").
		From(models.MenuItem{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.MenuItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.Title, &item.Price, &item.Inventory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(models.MenuItem{}.TableName()).
		Columns("title", "price", "inventory").
		Values(item.Title, item.Price, item.Inventory).
		Suffix("RETURNING id, title, price, inventory").
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.MenuItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Title, &created.Price, &created.Inventory); err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateMenuItem").Msg("error creating menu item")
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	query, args, err := psql.
		Update(models.MenuItem{}.TableName()).
		Set("title", item.Title).
		Set("price", item.Price).
		Set("inventory", item.Inventory).
		Where(sq.Eq{"id": item.ID}).
		Suffix("RETURNING id, title, price, inventory").
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.MenuItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Price, &updated.Inventory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	query, args, err := psql.
		Delete(models.MenuItem{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}
