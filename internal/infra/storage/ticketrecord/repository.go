package ticketrecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MuseumService/pkg/psqlbuilder"
)

// Repository репозиторий финальных записей о купленных билетах
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория билетов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var recordColumns = []string{
	"booking_id",
	"museum_id",
	"ticket_type_id",
	"ticket_name",
	"quantity",
	"visit_date",
	"visitor",
	"payment_id",
	"payment_status",
	"total_amount",
	"created_at",
}

// Create сохраняет запись о купленном билете
// Запись неизменяема, обновлений не предусмотрено
func (r *Repository) Create(ctx context.Context, record *domain.TicketRecord) (*domain.TicketRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	visitor, err := json.Marshal(record.Visitor)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - visitor: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("ticket_records").
		Columns(
			"booking_id",
			"museum_id",
			"ticket_type_id",
			"ticket_name",
			"quantity",
			"visit_date",
			"visitor",
			"payment_id",
			"payment_status",
			"total_amount",
		).
		Values(
			record.BookingID,
			record.MuseumID,
			record.TicketTypeID,
			record.TicketName,
			record.Quantity,
			record.VisitDate,
			visitor,
			record.PaymentID,
			record.PaymentStatus,
			record.TotalAmount,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByBookingID получает запись о билете по booking_id
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.TicketRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("ticket_records").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetByPaymentID получает запись о билете по payment_id
// Используется для идемпотентного повторного settlement
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.TicketRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("ticket_records").
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.TicketRecord, error) {
	var (
		record    domain.TicketRecord
		visitor   []byte
		createdAt sql.NullTime
	)

	err := row.Scan(
		&record.BookingID,
		&record.MuseumID,
		&record.TicketTypeID,
		&record.TicketName,
		&record.Quantity,
		&record.VisitDate,
		&visitor,
		&record.PaymentID,
		&record.PaymentStatus,
		&record.TotalAmount,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan record: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(visitor, &record.Visitor); err != nil {
		return nil, fmt.Errorf("%w: visitor: %v", ErrUnmarshal, err)
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}
