package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/splitmoney/splitmoney/pkg/dto"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &repository{db: db}, mock
}

func TestRepository_Create(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepo(t)

	create := &dto.UserCreate{
		ID:       uuid.New(),
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "$2a$14$hash",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), create))
}

func TestRepository_Get(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo, mock := newMockRepo(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "is_active",
		"full_name", "email", "contact_no", "password_hash",
		"status", "email_verified", "otp_code", "otp_created_at", "last_login",
	}).AddRow(
		id, now, now, true,
		"Test User", "test@example.com", "", "$2a$14$hash",
		1, false, nil, nil, nil,
	)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE (.+)`).
		WillReturnRows(rows)

	u, err := repo.Get(context.Background(), id)
	require.NoError(err)
	require.NotNil(u)
	assert.Equal(id, u.ID)
	assert.Equal("test@example.com", u.Email)
	assert.False(u.EmailVerified)
	assert.Empty(u.OtpCode)
}

func TestRepository_Get_NotFound(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	u, err := repo.Get(context.Background(), uuid.New())
	require.NoError(err)
	require.Nil(u)
}

func TestRepository_ExistsByEmail(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "test@example.com")
	require.NoError(err)
	require.True(exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.ExistsByEmail(context.Background(), "other@example.com")
	require.NoError(err)
	require.False(exists)
}

func TestRepository_SoftDelete(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.SoftDelete(context.Background(), uuid.New()))
}

func TestRepository_SetOtp(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.SetOtp(context.Background(), uuid.New(), "123456", time.Now()))
}
