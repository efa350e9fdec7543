package museum

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func museumRow(id, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "description", "location", "timings", "tickets", "shows", "facilities", "created_at", "updated_at",
	}).AddRow(
		id,
		name,
		"Science museum",
		[]byte(`{"address":"Kasturba Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`),
		[]byte(`{"opening":"10:00 AM","closing":"6:00 PM","holidays":["Deepavali"]}`),
		[]byte(`{"general":{"name":"General","price":200,"description":"Standard entry"}}`),
		[]byte(`[{"name":"Science Show","description":"Live demos","schedule":"Hourly","price":"Free"}]`),
		[]byte(`["Parking","Cafeteria"]`),
		now,
		now,
	)
}

func testMuseumFixture() *domain.Museum {
	return &domain.Museum{
		ID:          "vitm",
		Name:        "VITM",
		Description: "Science museum",
		Location:    domain.Location{Address: "Kasturba Road", City: "Bengaluru"},
		Timings:     domain.Timings{Opening: "10:00 AM", Closing: "6:00 PM"},
		Tickets: map[string]domain.Ticket{
			"general": {Name: "General", Price: 200},
		},
	}
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, location, timings, tickets, shows, facilities, created_at, updated_at FROM museums WHERE id = $1")).
		WithArgs("vitm").
		WillReturnRows(museumRow("vitm", "VITM"))

	museum, err := repo.GetByID(context.Background(), "vitm")
	require.NoError(t, err)

	assert.Equal(t, "vitm", museum.ID)
	assert.Equal(t, "VITM", museum.Name)
	assert.Equal(t, "Bengaluru", museum.Location.City)
	assert.Equal(t, "10:00 AM", museum.Timings.Opening)
	assert.Equal(t, []string{"Deepavali"}, museum.Timings.Holidays)
	assert.Equal(t, float64(200), museum.Tickets["general"].Price)
	require.Len(t, museum.Shows, 1)
	assert.Equal(t, "Science Show", museum.Shows[0].Name)
	assert.Equal(t, []string{"Parking", "Cafeteria"}, museum.Facilities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM museums WHERE id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "location", "timings", "tickets", "shows", "facilities", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrMuseumNotFound)
}

func TestList_OrderedByName(t *testing.T) {
	repo, mock := newMock(t)

	rows := museumRow("gmb", "Government Museum")
	rows.AddRow(
		"vitm", "VITM", "",
		[]byte(`{}`), []byte(`{}`), []byte(`{}`), []byte(`[]`), []byte(`[]`),
		time.Now(), time.Now(),
	)

	mock.ExpectQuery("SELECT .+ FROM museums ORDER BY name ASC").
		WillReturnRows(rows)

	museums, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, museums, 2)
	assert.Equal(t, "gmb", museums[0].ID)
	assert.Equal(t, "vitm", museums[1].ID)
}

func TestUpsert(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO museums .+ ON CONFLICT \\(id\\) DO UPDATE SET").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	museum := testMuseumFixture()
	saved, err := repo.Upsert(context.Background(), museum)
	require.NoError(t, err)

	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO museums").
		WillReturnError(assert.AnError)

	_, err := repo.Upsert(context.Background(), testMuseumFixture())
	assert.ErrorIs(t, err, ErrExecQuery)
}
