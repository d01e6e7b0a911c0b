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

// Срок действия приглашения
const invitationTTL = 7 * 24 * time.Hour

// InvitationQueriesInterface определяет интерфейс запросов к приглашениям
type InvitationQueriesInterface interface {
	CreateInvitation(ctx context.Context, req models.CreateInvitationRequest, token string) (*models.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*models.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*models.Invitation, error)
	MarkInvitationUsed(ctx context.Context, id string) error
}

// InvitationQueries содержит методы запросов для работы с приглашениями
type InvitationQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewInvitationQueries создает новый экземпляр InvitationQueries
func NewInvitationQueries(db *db.Database) *InvitationQueries {
	return &InvitationQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

const invitationColumns = "id, email, role, token, is_used, created_at, expires_at"

// CreateInvitation создает новое приглашение
func (q *InvitationQueries) CreateInvitation(ctx context.Context, req models.CreateInvitationRequest, token string) (*models.Invitation, error) {
	id := uuid.New().String()
	now := time.Now()

	query := q.sq.
		Insert("invitations").
		Columns("id", "email", "role", "token", "is_used", "created_at", "expires_at").
		Values(id, req.Email, req.Role, token, false, now, now.Add(invitationTTL)).
		Suffix("RETURNING " + invitationColumns)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var invitation models.Invitation
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&invitation)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &invitation, nil
}

// GetInvitationByToken получает приглашение по токену
func (q *InvitationQueries) GetInvitationByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return q.getInvitation(ctx, squirrel.Eq{"token": token})
}

// GetPendingInvitationByEmail получает неиспользованное и не истекшее
// приглашение для email. Возвращает sql.ErrNoRows, если такого нет.
func (q *InvitationQueries) GetPendingInvitationByEmail(ctx context.Context, email string) (*models.Invitation, error) {
	query := q.sq.
		Select(invitationColumns).
		From("invitations").
		Where(squirrel.Eq{"email": email, "is_used": false}).
		Where(squirrel.Gt{"expires_at": time.Now()}).
		OrderBy("created_at DESC").
		Limit(1)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var invitation models.Invitation
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&invitation)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &invitation, nil
}

func (q *InvitationQueries) getInvitation(ctx context.Context, where squirrel.Eq) (*models.Invitation, error) {
	query := q.sq.
		Select(invitationColumns).
		From("invitations").
		Where(where)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var invitation models.Invitation
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&invitation)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &invitation, nil
}

// MarkInvitationUsed помечает приглашение использованным
func (q *InvitationQueries) MarkInvitationUsed(ctx context.Context, id string) error {
	query := q.sq.
		Update("invitations").
		Set("is_used", true).
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to mark invitation used: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("invitation %s not found", id)
	}

	return nil
}
