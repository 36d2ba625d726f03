package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestPostgres_Get(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM metadata WHERE key = \$1$`).
		WithArgs("salt").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("s")))
	mock.ExpectQuery(`^SELECT value FROM metadata WHERE key = \$1$`).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	v, err := repo.Get(context.Background(), "salt")
	require.NoError(t, err)
	assert.Equal(t, []byte("s"), v)

	v, err = repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPostgres_Set_Upserts(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO metadata \(key, value\) VALUES \(\$1, \$2\)\s+ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "k", []byte("v")))
}

func TestPostgres_Set_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(errors.New("db down"))

	err := repo.Set(context.Background(), "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set metadata[k]")
}

func TestPostgres_DeleteClearList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM metadata WHERE key = \$1$`).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`^SELECT key, value FROM metadata$`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("a", []byte{1}))
	mock.ExpectExec(`^DELETE FROM metadata$`).WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, repo.Delete(ctx, "k"))

	m, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {1}}, m)

	require.NoError(t, repo.Clear(ctx))
}
