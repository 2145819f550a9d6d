package repository

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
	}
	return sqlxDB, mock, cleanup
}

var studentRowColumns = []string{
	"id", "name", "cpf", "birth_date", "phone", "email", "address", "start_date", "password_hash",
	"weight", "height", "chest_circumference", "waist_circumference", "hip_circumference", "arm_circumference", "thigh_circumference",
	"created_at", "updated_at",
}
