package backupcodes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deviceQuery  = `(?s)^SELECT\s+id\s+FROM\s+otp_static_staticdevice\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+confirmed\s*=\s*TRUE\s+ORDER\s+BY\s+id\s+LIMIT\s+1\s*$`
	codeQuery    = `(?s)^SELECT\s+id,\s*device_id\s+FROM\s+otp_static_statictoken\s+WHERE\s+device_id\s*=\s*\$1\s+AND\s+token\s*=\s*\$2\s+LIMIT\s+1\s*$`
	consumeQuery = `(?s)^DELETE\s+FROM\s+otp_static_statictoken\s+WHERE\s+id\s*=\s*\$1\s+AND\s+device_id\s*=\s*\$2\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestFindConfirmedDevice(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(deviceQuery).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.FindConfirmedDevice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestFindConfirmedDevice_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(deviceQuery).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindConfirmedDevice(context.Background(), 7)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindCode(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(codeQuery).WithArgs(int64(11), "ABC123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "device_id"}).AddRow(int64(90), int64(11)))

	got, err := repo.FindCode(context.Background(), 11, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, &models.StaticToken{ID: 90, DeviceID: 11}, got)
}

func TestFindCode_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(codeQuery).WithArgs(int64(11), "ZZZ").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCode(context.Background(), 11, "ZZZ")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestConsume(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "lost race", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectExec(consumeQuery).
				WithArgs(int64(90), int64(11)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.Consume(context.Background(), &models.StaticToken{ID: 90, DeviceID: 11})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConsume_QueryFailed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(consumeQuery).WillReturnError(errors.New("deadlock detected"))

	ok, err := repo.Consume(context.Background(), &models.StaticToken{ID: 90, DeviceID: 11})
	require.ErrorIs(t, err, common.ErrQueryFailed)
	assert.False(t, ok)
}
