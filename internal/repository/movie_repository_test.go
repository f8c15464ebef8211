package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepoListTitles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT title FROM movies").
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("Matrix").AddRow("Titanic"))

	titles, err := NewMovieRepo(db).ListTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Matrix", "Titanic"}, titles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepoListTitlesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT title FROM movies").
		WillReturnRows(sqlmock.NewRows([]string{"title"}))

	titles, err := NewMovieRepo(db).ListTitles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, titles)
	assert.Empty(t, titles)
}

func TestMovieRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO movies").
		WithArgs("Matrix", 120, "sci-fi").
		WillReturnResult(sqlmock.NewResult(3, 1))

	m := &Movie{Title: "Matrix", DurationMin: 120, Description: "sci-fi"}
	require.NoError(t, NewMovieRepo(db).Insert(context.Background(), m))
	assert.Equal(t, int64(3), m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
