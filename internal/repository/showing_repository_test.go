package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShowingRepo(t *testing.T) (*ShowingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewShowingRepo(db), mock
}

func TestShowingRepoListSchedule(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectQuery("SELECT m.title, s.starts_at").
		WillReturnRows(sqlmock.NewRows([]string{"title", "starts_at"}).
			AddRow("Matrix", "18:00").
			AddRow("Titanic", "20:00"))

	entries, err := repo.ListSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ScheduleEntry{
		{Title: "Matrix", StartsAt: "18:00"},
		{Title: "Titanic", StartsAt: "20:00"},
	}, entries)
}

func TestShowingRepoListPrices(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectQuery("SELECT m.title, s.price").
		WillReturnRows(sqlmock.NewRows([]string{"title", "price"}).
			AddRow("Matrix", 7.5))

	entries, err := repo.ListPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []PriceEntry{{Title: "Matrix", Price: 7.5}}, entries)
}

func TestShowingRepoFindByID(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectQuery("SELECT m.title, s.starts_at, s.price").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"title", "starts_at", "price"}).
			AddRow("Matrix", "20:00", 10.0))

	info, err := repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &ShowingInfo{ID: 4, Title: "Matrix", StartsAt: "20:00", Price: 10.0}, info)
}

func TestShowingRepoFindByIDNotFound(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectQuery("SELECT m.title, s.starts_at, s.price").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrShowingNotFound)
}

func TestShowingRepoFirstByTitle(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectQuery("SELECT s.id, m.title, s.starts_at, s.price").
		WithArgs("Matrix").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "starts_at", "price"}).
			AddRow(2, "Matrix", "18:00", 10.0))

	info, err := repo.FirstByTitle(context.Background(), "Matrix")
	require.NoError(t, err)
	assert.Equal(t, &ShowingInfo{ID: 2, Title: "Matrix", StartsAt: "18:00", Price: 10.0}, info)
}

func TestShowingRepoInsert(t *testing.T) {
	repo, mock := newShowingRepo(t)

	mock.ExpectExec("INSERT INTO showings").
		WithArgs(int64(1), "20:00", "Sala 1", 10.0).
		WillReturnResult(sqlmock.NewResult(5, 1))

	s := &Showing{MovieID: 1, StartsAt: "20:00", Room: "Sala 1", Price: 10.0}
	require.NoError(t, repo.Insert(context.Background(), s))
	assert.Equal(t, int64(5), s.ID)
}
