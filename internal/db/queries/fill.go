package queries

import (
	"context"
	"fmt"
	"time"

	"cats-service/internal/db"
	"cats-service/internal/lifecycle"
	"cats-service/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// FillQueriesInterface определяет интерфейс запросов к заполнениям тары
type FillQueriesInterface interface {
	FillContainer(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill, userID, userName string) error
	EmptyContainer(ctx context.Context, containerID int64, userID, userName string) error
	UpdateCurrentFill(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill) error
	GetContainerHistory(ctx context.Context, containerID int64) ([]models.ContainerFill, error)
	SearchFills(ctx context.Context, params models.SearchContainerFillsParams) ([]models.ContainerFill, error)
}

// FillQueries содержит методы запросов для работы с заполнениями
type FillQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewFillQueries создает новый экземпляр FillQueries
func NewFillQueries(db *db.Database) *FillQueries {
	return &FillQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FillContainer записывает новое заполнение: создает запись истории и
// переводит тару в статус Full одной транзакцией
func (q *FillQueries) FillContainer(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill, userID, userName string) error {
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	insert := q.sq.
		Insert("container_fills").
		Columns("id", "container_id", "product_id", "product_name", "product_type_name",
			"quantity", "unit", "production_date", "expiration_date",
			"filled_at", "filled_by", "filled_by_name").
		Values(uuid.New().String(), containerID, product.ID, product.Name, product.ProductTypeName,
			fill.Quantity, fill.Unit, fill.ProductionDate, fill.ExpirationDate,
			now, userID, userName)

	qsql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to create fill record: %w", err)
	}

	update := q.sq.
		Update("containers").
		Set("status", models.StatusFull).
		Set("current_product_id", product.ID).
		Set("current_product_name", product.Name).
		Set("current_quantity", fill.Quantity).
		Set("current_unit", fill.Unit).
		Set("current_production_date", fill.ProductionDate).
		Set("current_expiration_date", fill.ExpirationDate).
		Set("current_filled_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": containerID})

	qsql, args, err = update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to update container: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fill: %w", err)
	}

	return nil
}

// EmptyContainer закрывает текущее заполнение и переводит тару в статус Empty
func (q *FillQueries) EmptyContainer(ctx context.Context, containerID int64, userID, userName string) error {
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	closeFill := q.sq.
		Update("container_fills").
		Set("emptied_at", now).
		Set("emptied_by", userID).
		Set("emptied_by_name", userName).
		Where(squirrel.Eq{"container_id": containerID}).
		Where("emptied_at IS NULL")

	qsql, args, err := closeFill.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to close fill record: %w", err)
	}

	clear := q.sq.
		Update("containers").
		Set("status", models.StatusEmpty).
		Set("current_product_id", nil).
		Set("current_product_name", nil).
		Set("current_quantity", nil).
		Set("current_unit", nil).
		Set("current_production_date", nil).
		Set("current_expiration_date", nil).
		Set("current_filled_at", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": containerID})

	qsql, args, err = clear.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to update container: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit empty: %w", err)
	}

	return nil
}

// UpdateCurrentFill правит текущее заполнение на месте: изменяет открытую
// запись истории вместо создания новой
func (q *FillQueries) UpdateCurrentFill(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill) error {
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	updateFill := q.sq.
		Update("container_fills").
		Set("product_id", product.ID).
		Set("product_name", product.Name).
		Set("product_type_name", product.ProductTypeName).
		Set("quantity", fill.Quantity).
		Set("unit", fill.Unit).
		Set("production_date", fill.ProductionDate).
		Set("expiration_date", fill.ExpirationDate).
		Where(squirrel.Eq{"container_id": containerID}).
		Where("emptied_at IS NULL")

	qsql, args, err := updateFill.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to update fill record: %w", err)
	}

	updateContainer := q.sq.
		Update("containers").
		Set("current_product_id", product.ID).
		Set("current_product_name", product.Name).
		Set("current_quantity", fill.Quantity).
		Set("current_unit", fill.Unit).
		Set("current_production_date", fill.ProductionDate).
		Set("current_expiration_date", fill.ExpirationDate).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": containerID})

	qsql, args, err = updateContainer.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, qsql, args...); err != nil {
		return fmt.Errorf("failed to update container: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fill update: %w", err)
	}

	return nil
}

// GetContainerHistory получает историю заполнений тары, новые записи первыми
func (q *FillQueries) GetContainerHistory(ctx context.Context, containerID int64) ([]models.ContainerFill, error) {
	query := q.sq.
		Select("id", "container_id", "product_id", "product_name", "product_type_name",
			"quantity", "unit", "production_date", "expiration_date",
			"filled_at", "filled_by", "filled_by_name",
			"emptied_at", "emptied_by", "emptied_by_name").
		From("container_fills").
		Where(squirrel.Eq{"container_id": containerID}).
		OrderBy("filled_at DESC")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var fills []models.ContainerFill
	err = q.db.SelectContext(ctx, &fills, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get container history: %w", err)
	}

	return fills, nil
}

// SearchFills ищет записи истории заполнений по составному фильтру,
// поверх всей тары сразу. Новые записи первыми.
func (q *FillQueries) SearchFills(ctx context.Context, params models.SearchContainerFillsParams) ([]models.ContainerFill, error) {
	queryBuilder := q.sq.
		Select("cf.id", "cf.container_id", "cf.product_id", "cf.product_name", "cf.product_type_name",
			"cf.quantity", "cf.unit", "cf.production_date", "cf.expiration_date",
			"cf.filled_at", "cf.filled_by", "cf.filled_by_name",
			"cf.emptied_at", "cf.emptied_by", "cf.emptied_by_name").
		From("container_fills cf")

	if params.ProductID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cf.product_id": params.ProductID})
	}

	if params.ProductTypeID != "" {
		queryBuilder = queryBuilder.
			Join("products p ON p.id = cf.product_id").
			Where(squirrel.Eq{"p.product_type_id": params.ProductTypeID})
	}

	if params.ContainerID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cf.container_id": params.ContainerID})
	}

	if params.FromDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.Expr("cf.filled_at >= ?::date", params.FromDate))
	}

	if params.ToDate != "" {
		// Верхняя граница включает весь указанный день
		queryBuilder = queryBuilder.Where(squirrel.Expr("cf.filled_at < ?::date + INTERVAL '1 day'", params.ToDate))
	}

	if params.OnlyActive {
		queryBuilder = queryBuilder.Where("cf.emptied_at IS NULL")
	}

	qsql, args, err := queryBuilder.OrderBy("cf.filled_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var fills []models.ContainerFill
	err = q.db.SelectContext(ctx, &fills, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search fills: %w", err)
	}

	return fills, nil
}
