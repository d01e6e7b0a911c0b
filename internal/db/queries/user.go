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

// UserQueriesInterface определяет интерфейс запросов к пользователям
type UserQueriesInterface interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error)
	SetUserActive(ctx context.Context, id string, active bool) error
}

// UserQueries содержит методы запросов для работы с пользователями
type UserQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewUserQueries создает новый экземпляр UserQueries
func NewUserQueries(db *db.Database) *UserQueries {
	return &UserQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

const userColumns = "id, email, first_name, middle_name, last_name, role, is_active, created_at, updated_at"

// CreateUser создает нового пользователя
func (q *UserQueries) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	id := uuid.New().String()
	now := time.Now()

	query := q.sq.
		Insert("users").
		Columns("id", "email", "first_name", "middle_name", "last_name", "role", "is_active", "created_at", "updated_at").
		Values(id, req.Email, req.FirstName, req.MiddleName, req.LastName, req.Role, req.IsActive, now, now).
		Suffix("RETURNING " + userColumns)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var user models.User
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByID получает пользователя по идентификатору
func (q *UserQueries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return q.getUser(ctx, squirrel.Eq{"id": id})
}

// GetUserByEmail получает пользователя по email. Возвращает sql.ErrNoRows,
// если пользователя нет.
func (q *UserQueries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return q.getUser(ctx, squirrel.Eq{"email": email})
}

func (q *UserQueries) getUser(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	query := q.sq.
		Select(userColumns).
		From("users").
		Where(where)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var user models.User
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListUsers получает всех пользователей
func (q *UserQueries) ListUsers(ctx context.Context) ([]models.User, error) {
	query := q.sq.
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var users []models.User
	err = q.db.SelectContext(ctx, &users, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// UpdateUser изменяет данные пользователя
func (q *UserQueries) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	query := q.sq.
		Update("users").
		Set("first_name", req.FirstName).
		Set("middle_name", req.MiddleName).
		Set("last_name", req.LastName).
		Set("role", req.Role).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	return q.execUserUpdate(ctx, id, query)
}

// UpdateProfile изменяет собственный профиль пользователя (роль не затрагивается)
func (q *UserQueries) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	query := q.sq.
		Update("users").
		Set("first_name", req.FirstName).
		Set("middle_name", req.MiddleName).
		Set("last_name", req.LastName).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	return q.execUserUpdate(ctx, id, query)
}

func (q *UserQueries) execUserUpdate(ctx context.Context, id string, query squirrel.UpdateBuilder) (*models.User, error) {
	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var user models.User
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s not found", id)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// SetUserActive включает или выключает пользователя
func (q *UserQueries) SetUserActive(ctx context.Context, id string, active bool) error {
	query := q.sq.
		Update("users").
		Set("is_active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}
