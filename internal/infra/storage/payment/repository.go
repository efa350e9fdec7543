package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MuseumService/pkg/psqlbuilder"
)

// Repository репозиторий платежных намерений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var intentColumns = []string{
	"payment_id",
	"museum_id",
	"ticket_type_id",
	"quantity",
	"amount",
	"currency",
	"status",
	"created_at",
	"updated_at",
}

// Create сохраняет новое платежное намерение со статусом pending
func (r *Repository) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_intents").
		Columns("payment_id", "museum_id", "ticket_type_id", "quantity", "amount", "currency", "status").
		Values(
			intent.PaymentID,
			intent.MuseumID,
			intent.TicketTypeID,
			intent.Quantity,
			intent.Amount,
			intent.Currency,
			intent.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	intent.CreatedAt = createdAt.Time
	intent.UpdatedAt = updatedAt.Time

	return intent, nil
}

// GetByID получает платежное намерение по payment_id
func (r *Repository) GetByID(ctx context.Context, paymentID string) (*domain.PaymentIntent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intentColumns...).
		From("payment_intents").
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		intent    domain.PaymentIntent
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&intent.PaymentID,
		&intent.MuseumID,
		&intent.TicketTypeID,
		&intent.Quantity,
		&intent.Amount,
		&intent.Currency,
		&intent.Status,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrIntentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan intent: %v", ErrScanRow, err)
	}

	intent.CreatedAt = createdAt.Time
	intent.UpdatedAt = updatedAt.Time

	return &intent, nil
}

// UpdateStatus переводит намерение в новый статус
func (r *Repository) UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_intents").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrIntentNotFound
	}

	return nil
}
