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
	"github.com/lib/pq"
)

// ContainerTypeQueriesInterface определяет интерфейс запросов к типам тары
type ContainerTypeQueriesInterface interface {
	CreateContainerType(ctx context.Context, req models.CreateContainerTypeRequest) (*models.ContainerType, error)
	GetContainerTypeByID(ctx context.Context, id string) (*models.ContainerType, error)
	ListContainerTypes(ctx context.Context) ([]models.ContainerType, error)
	UpdateContainerType(ctx context.Context, id string, req models.UpdateContainerTypeRequest) (*models.ContainerType, error)
	DeleteContainerType(ctx context.Context, id string) error
}

// ContainerTypeQueries содержит методы запросов для работы с типами тары
type ContainerTypeQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewContainerTypeQueries создает новый экземпляр ContainerTypeQueries
func NewContainerTypeQueries(db *db.Database) *ContainerTypeQueries {
	return &ContainerTypeQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

const containerTypeColumns = "id, name, code_prefix, default_unit, meta, allowed_product_type_ids, created_at, updated_at"

// CreateContainerType создает новый тип тары
func (q *ContainerTypeQueries) CreateContainerType(ctx context.Context, req models.CreateContainerTypeRequest) (*models.ContainerType, error) {
	id := uuid.New().String()
	now := time.Now()

	query := q.sq.
		Insert("container_types").
		Columns("id", "name", "code_prefix", "default_unit", "meta", "allowed_product_type_ids", "created_at", "updated_at").
		Values(id, req.Name, req.CodePrefix, req.DefaultUnit, req.Meta, pq.StringArray(req.AllowedProductTypeIDs), now, now).
		Suffix("RETURNING " + containerTypeColumns)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var containerType models.ContainerType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&containerType)
	if err != nil {
		return nil, fmt.Errorf("failed to create container type: %w", err)
	}

	return &containerType, nil
}

// GetContainerTypeByID получает тип тары по идентификатору
func (q *ContainerTypeQueries) GetContainerTypeByID(ctx context.Context, id string) (*models.ContainerType, error) {
	query := q.sq.
		Select(containerTypeColumns).
		From("container_types").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var containerType models.ContainerType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&containerType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("container type %s not found", id)
		}
		return nil, fmt.Errorf("failed to get container type: %w", err)
	}

	return &containerType, nil
}

// ListContainerTypes получает все типы тары
func (q *ContainerTypeQueries) ListContainerTypes(ctx context.Context) ([]models.ContainerType, error) {
	query := q.sq.
		Select(containerTypeColumns).
		From("container_types").
		OrderBy("name")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var containerTypes []models.ContainerType
	err = q.db.SelectContext(ctx, &containerTypes, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get container types: %w", err)
	}

	return containerTypes, nil
}

// UpdateContainerType изменяет тип тары
func (q *ContainerTypeQueries) UpdateContainerType(ctx context.Context, id string, req models.UpdateContainerTypeRequest) (*models.ContainerType, error) {
	query := q.sq.
		Update("container_types").
		Set("name", req.Name).
		Set("code_prefix", req.CodePrefix).
		Set("default_unit", req.DefaultUnit).
		Set("meta", req.Meta).
		Set("allowed_product_type_ids", pq.StringArray(req.AllowedProductTypeIDs)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + containerTypeColumns)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var containerType models.ContainerType
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&containerType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("container type %s not found", id)
		}
		return nil, fmt.Errorf("failed to update container type: %w", err)
	}

	return &containerType, nil
}

// DeleteContainerType удаляет тип тары
func (q *ContainerTypeQueries) DeleteContainerType(ctx context.Context, id string) error {
	query := q.sq.
		Delete("container_types").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete container type: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("container type %s not found", id)
	}

	return nil
}
