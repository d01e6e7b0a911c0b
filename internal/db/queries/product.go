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

// ProductQueriesInterface определяет интерфейс запросов к продуктам
type ProductQueriesInterface interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductQueries содержит методы запросов для работы с продуктами
type ProductQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewProductQueries создает новый экземпляр ProductQueries
func NewProductQueries(db *db.Database) *ProductQueries {
	return &ProductQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

func (q *ProductQueries) selectProducts() squirrel.SelectBuilder {
	return q.sq.
		Select("p.id", "p.name", "p.description", "p.product_type_id",
			"pt.name AS product_type_name",
			"p.shelf_life_days", "p.shelf_life_hours",
			"p.created_at", "p.updated_at").
		From("products p").
		Join("product_types pt ON pt.id = p.product_type_id")
}

// CreateProduct создает новый продукт
func (q *ProductQueries) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	id := uuid.New().String()
	now := time.Now()

	query := q.sq.
		Insert("products").
		Columns("id", "name", "description", "product_type_id", "shelf_life_days", "shelf_life_hours", "created_at", "updated_at").
		Values(id, req.Name, req.Description, req.ProductTypeID, req.ShelfLifeDays, req.ShelfLifeHours, now, now)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := q.db.ExecContext(ctx, qsql, args...); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return q.GetProductByID(ctx, id)
}

// GetProductByID получает продукт по идентификатору
func (q *ProductQueries) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := q.selectProducts().Where(squirrel.Eq{"p.id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var product models.Product
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&product)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// ListProducts получает все продукты
func (q *ProductQueries) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := q.selectProducts().OrderBy("p.name")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var products []models.Product
	err = q.db.SelectContext(ctx, &products, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return products, nil
}

// UpdateProduct изменяет продукт
func (q *ProductQueries) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	query := q.sq.
		Update("products").
		Set("name", req.Name).
		Set("description", req.Description).
		Set("product_type_id", req.ProductTypeID).
		Set("shelf_life_days", req.ShelfLifeDays).
		Set("shelf_life_hours", req.ShelfLifeHours).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("product %s not found", id)
	}

	return q.GetProductByID(ctx, id)
}

// DeleteProduct удаляет продукт
func (q *ProductQueries) DeleteProduct(ctx context.Context, id string) error {
	query := q.sq.
		Delete("products").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("product %s not found", id)
	}

	return nil
}
