package museum

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

// Repository репозиторий для работы с каталогом музеев
// Вложенные структуры (location, timings, tickets, shows, facilities)
// хранятся в jsonb колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория музеев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var museumColumns = []string{
	"id",
	"name",
	"description",
	"location",
	"timings",
	"tickets",
	"shows",
	"facilities",
	"created_at",
	"updated_at",
}

// GetByID получает музей по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Museum, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(museumColumns...).
		From("museums").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	museum, err := scanMuseum(row)
	if err == sql.ErrNoRows {
		return nil, ErrMuseumNotFound
	}
	if err != nil {
		return nil, err
	}

	return museum, nil
}

// List получает все музеи каталога, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Museum, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(museumColumns...).
		From("museums").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var museums []*domain.Museum
	for rows.Next() {
		museum, err := scanMuseum(rows)
		if err != nil {
			return nil, err
		}
		museums = append(museums, museum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return museums, nil
}

// Upsert создает или полностью заменяет запись музея
// Используется админским API и bulk-импортом seed-данных
func (r *Repository) Upsert(ctx context.Context, museum *domain.Museum) (*domain.Museum, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	location, err := json.Marshal(museum.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - location: %v", ErrMarshal, err)
	}
	timings, err := json.Marshal(museum.Timings)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - timings: %v", ErrMarshal, err)
	}
	tickets, err := json.Marshal(museum.Tickets)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - tickets: %v", ErrMarshal, err)
	}
	shows, err := json.Marshal(museum.Shows)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - shows: %v", ErrMarshal, err)
	}
	facilities, err := json.Marshal(museum.Facilities)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - facilities: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("museums").
		Columns("id", "name", "description", "location", "timings", "tickets", "shows", "facilities").
		Values(museum.ID, museum.Name, museum.Description, location, timings, tickets, shows, facilities).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			timings = EXCLUDED.timings,
			tickets = EXCLUDED.tickets,
			shows = EXCLUDED.shows,
			facilities = EXCLUDED.facilities,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	museum.CreatedAt = createdAt.Time
	museum.UpdatedAt = updatedAt.Time

	return museum, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMuseum(row rowScanner) (*domain.Museum, error) {
	var (
		museum     domain.Museum
		location   []byte
		timings    []byte
		tickets    []byte
		shows      []byte
		facilities []byte
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := row.Scan(
		&museum.ID,
		&museum.Name,
		&museum.Description,
		&location,
		&timings,
		&tickets,
		&shows,
		&facilities,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan museum: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(location, &museum.Location); err != nil {
		return nil, fmt.Errorf("%w: location: %v", ErrUnmarshal, err)
	}
	if err := json.Unmarshal(timings, &museum.Timings); err != nil {
		return nil, fmt.Errorf("%w: timings: %v", ErrUnmarshal, err)
	}
	if err := json.Unmarshal(tickets, &museum.Tickets); err != nil {
		return nil, fmt.Errorf("%w: tickets: %v", ErrUnmarshal, err)
	}
	if err := json.Unmarshal(shows, &museum.Shows); err != nil {
		return nil, fmt.Errorf("%w: shows: %v", ErrUnmarshal, err)
	}
	if err := json.Unmarshal(facilities, &museum.Facilities); err != nil {
		return nil, fmt.Errorf("%w: facilities: %v", ErrUnmarshal, err)
	}

	museum.CreatedAt = createdAt.Time
	museum.UpdatedAt = updatedAt.Time

	return &museum, nil
}
