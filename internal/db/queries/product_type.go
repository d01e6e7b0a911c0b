package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cats-service/internal/db"
	"cats-service/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// ProductTypeQueriesInterface определяет интерфейс запросов к категориям продуктов
type ProductTypeQueriesInterface interface {
	CreateProductType(ctx context.Context, req models.CreateProductTypeRequest) (*models.ProductType, error)
	GetProductTypeByID(ctx context.Context, id string) (*models.ProductType, error)
	ListProductTypes(ctx context.Context) ([]models.ProductType, error)
	UpdateProductType(ctx context.Context, id string, req models.UpdateProductTypeRequest) (*models.ProductType, error)
	DeleteProductType(ctx context.Context, id string) error
}

// ProductTypeQueries содержит методы запросов для работы с категориями продуктов
type ProductTypeQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewProductTypeQueries создает новый экземпляр ProductTypeQueries
func NewProductTypeQueries(db *db.Database) *ProductTypeQueries {
	return &ProductTypeQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

var productTypeColumns = []string{"id", "name", "shelf_life_days", "shelf_life_hours", "meta", "created_at", "updated_at"}

// CreateProductType создает новую категорию продуктов
func (q *ProductTypeQueries) CreateProductType(ctx context.Context, req models.CreateProductTypeRequest) (*models.ProductType, error) {
	id := uuid.New().String()
	now := time.Now()

	query := q.sq.
		Insert("product_types").
		Columns(productTypeColumns...).
		Values(id, req.Name, req.ShelfLifeDays, req.ShelfLifeHours, req.Meta, now, now).
		Suffix("RETURNING " + "id, name, shelf_life_days, shelf_life_hours, meta, created_at, updated_at")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var productType models.ProductType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&productType)
	if err != nil {
		return nil, fmt.Errorf("failed to create product type: %w", err)
	}

	return &productType, nil
}

// GetProductTypeByID получает категорию продуктов по идентификатору
func (q *ProductTypeQueries) GetProductTypeByID(ctx context.Context, id string) (*models.ProductType, error) {
	query := q.sq.
		Select(productTypeColumns...).
		From("product_types").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var productType models.ProductType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&productType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product type %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product type: %w", err)
	}

	return &productType, nil
}

// ListProductTypes получает все категории продуктов
func (q *ProductTypeQueries) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	query := q.sq.
		Select(productTypeColumns...).
		From("product_types").
		OrderBy("name")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var productTypes []models.ProductType
	err = q.db.SelectContext(ctx, &productTypes, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get product types: %w", err)
	}

	return productTypes, nil
}

// UpdateProductType изменяет категорию продуктов
func (q *ProductTypeQueries) UpdateProductType(ctx context.Context, id string, req models.UpdateProductTypeRequest) (*models.ProductType, error) {
	query := q.sq.
		Update("product_types").
		Set("name", req.Name).
		Set("shelf_life_days", req.ShelfLifeDays).
		Set("shelf_life_hours", req.ShelfLifeHours).
		Set("meta", req.Meta).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, shelf_life_days, shelf_life_hours, meta, created_at, updated_at")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var productType models.ProductType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&productType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product type %s not found", id)
		}
		return nil, fmt.Errorf("failed to update product type: %w", err)
	}

	return &productType, nil
}

// DeleteProductType удаляет категорию продуктов
func (q *ProductTypeQueries) DeleteProductType(ctx context.Context, id string) error {
	query := q.sq.
		Delete("product_types").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product type: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("product type %s not found", id)
	}

	return nil
}
