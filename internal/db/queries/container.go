package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cats-service/internal/db"
	"cats-service/internal/models"

	"github.com/Masterminds/squirrel"
)

// ErrContainerNotFound возвращается, когда тары с указанным ID или кодом
// не существует. Обработчики отличают по нему 404 от внутренней ошибки.
var ErrContainerNotFound = errors.New("container not found")

// ContainerQueriesInterface определяет интерфейс запросов к таре
type ContainerQueriesInterface interface {
	CreateContainer(ctx context.Context, req models.CreateContainerRequest, code string) (*models.Container, error)
	GetContainerByID(ctx context.Context, id int64) (*models.Container, error)
	GetContainerByCode(ctx context.Context, code string) (*models.Container, error)
	ListContainers(ctx context.Context) ([]models.Container, error)
	SearchContainers(ctx context.Context, params models.SearchContainersParams) ([]models.Container, error)
	UpdateContainer(ctx context.Context, id int64, req models.UpdateContainerRequest) (*models.Container, error)
	DeleteContainer(ctx context.Context, id int64) error
}

// ContainerQueries содержит методы запросов для работы с тарой
type ContainerQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewContainerQueries создает новый экземпляр ContainerQueries
func NewContainerQueries(db *db.Database) *ContainerQueries {
	return &ContainerQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// Столбцы тары вместе с именем типа
var containerColumns = []string{
	"c.id", "c.code", "c.name", "c.volume", "c.unit",
	"c.container_type_id", "ct.name AS container_type_name",
	"c.status", "c.meta",
	"c.current_product_id", "c.current_product_name", "c.current_quantity",
	"c.current_unit", "c.current_production_date", "c.current_expiration_date",
	"c.current_filled_at",
	"c.created_at", "c.updated_at",
}

func (q *ContainerQueries) selectContainers() squirrel.SelectBuilder {
	return q.sq.
		Select(containerColumns...).
		From("containers c").
		Join("container_types ct ON ct.id = c.container_type_id")
}

// CreateContainer создает новую тару в статусе Empty
func (q *ContainerQueries) CreateContainer(ctx context.Context, req models.CreateContainerRequest, code string) (*models.Container, error) {
	now := time.Now()

	query := q.sq.
		Insert("containers").
		Columns("code", "name", "volume", "unit", "container_type_id", "status", "meta", "created_at", "updated_at").
		Values(code, req.Name, req.Volume, req.Unit, req.ContainerTypeID, models.StatusEmpty, req.Meta, now, now).
		Suffix("RETURNING id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	err = q.db.QueryRowContext(ctx, qsql, args...).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return q.GetContainerByID(ctx, id)
}

// GetContainerByID получает тару по числовому идентификатору
func (q *ContainerQueries) GetContainerByID(ctx context.Context, id int64) (*models.Container, error) {
	query := q.selectContainers().Where(squirrel.Eq{"c.id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var container models.Container
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&container)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("container %d: %w", id, ErrContainerNotFound)
		}
		return nil, fmt.Errorf("failed to get container: %w", err)
	}

	return &container, nil
}

// GetContainerByCode получает тару по человекочитаемому коду
func (q *ContainerQueries) GetContainerByCode(ctx context.Context, code string) (*models.Container, error) {
	query := q.selectContainers().Where(squirrel.Eq{"c.code": code})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var container models.Container
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&container)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("container with code %s: %w", code, ErrContainerNotFound)
		}
		return nil, fmt.Errorf("failed to get container: %w", err)
	}

	return &container, nil
}

// ListContainers получает всю тару без фильтрации
func (q *ContainerQueries) ListContainers(ctx context.Context) ([]models.Container, error) {
	return q.runSearch(ctx, q.selectContainers().OrderBy("c.code"))
}

// SearchContainers получает тару по составному фильтру
func (q *ContainerQueries) SearchContainers(ctx context.Context, params models.SearchContainersParams) ([]models.Container, error) {
	queryBuilder := q.selectContainers()

	if params.SearchTerm != "" {
		pattern := "%" + params.SearchTerm + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"c.code": pattern},
			squirrel.ILike{"c.name": pattern},
		})
	}

	if params.ContainerTypeID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.container_type_id": params.ContainerTypeID})
	}

	if params.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": params.Status})
	}

	if params.ProductionDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.Expr("c.current_production_date::date = ?::date", params.ProductionDate))
	}

	if params.CurrentProductID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.current_product_id": params.CurrentProductID})
	}

	if params.CurrentProductTypeID != "" {
		queryBuilder = queryBuilder.
			Join("products p ON p.id = c.current_product_id").
			Where(squirrel.Eq{"p.product_type_id": params.CurrentProductTypeID})
	}

	if params.LastProductID != "" {
		// Продукт последнего заполнения, независимо от текущего статуса тары
		queryBuilder = queryBuilder.Where(squirrel.Expr(
			"(SELECT cf.product_id FROM container_fills cf WHERE cf.container_id = c.id ORDER BY cf.filled_at DESC LIMIT 1) = ?",
			params.LastProductID))
	}

	if params.ShowExpired {
		queryBuilder = queryBuilder.Where(squirrel.Expr("c.current_expiration_date < NOW()"))
	}

	if params.FilledToday {
		queryBuilder = queryBuilder.Where(squirrel.Expr("c.current_filled_at::date = CURRENT_DATE"))
	}

	return q.runSearch(ctx, queryBuilder.OrderBy("c.code"))
}

func (q *ContainerQueries) runSearch(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]models.Container, error) {
	qsql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var containers []models.Container
	err = q.db.SelectContext(ctx, &containers, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get containers: %w", err)
	}

	return containers, nil
}

// UpdateContainer изменяет атрибуты тары (не затрагивая текущее заполнение)
func (q *ContainerQueries) UpdateContainer(ctx context.Context, id int64, req models.UpdateContainerRequest) (*models.Container, error) {
	query := q.sq.
		Update("containers").
		Set("name", req.Name).
		Set("volume", req.Volume).
		Set("unit", req.Unit).
		Set("container_type_id", req.ContainerTypeID).
		Set("meta", req.Meta).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update container: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("container %d: %w", id, ErrContainerNotFound)
	}

	return q.GetContainerByID(ctx, id)
}

// DeleteContainer удаляет тару вместе с историей заполнений
func (q *ContainerQueries) DeleteContainer(ctx context.Context, id int64) error {
	query := q.sq.
		Delete("containers").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete container: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("container %d: %w", id, ErrContainerNotFound)
	}

	return nil
}
