package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JenTJames/wallit-server/internal/domain"
)

// --- helpers ---

func newMockStorage(t *testing.T) (*UserStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// то же подключение, что в postgres.NewGormDB: TranslateError включен,
	// чтобы нарушение уникального индекса приходило как gorm.ErrDuplicatedKey
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewUserStorage(gdb, slog.New(slog.DiscardHandler)), mock
}

func userColumns() []string {
	return []string{"id", "firstname", "lastname", "email", "password"}
}

// --- SaveUser ---

func TestSaveUser(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &domain.User{Firstname: "A", Lastname: "B", Email: "a@b.com", Password: "hash"}
	require.NoError(t, s.SaveUser(context.Background(), user))
	assert.Equal(t, uint(1), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUserDuplicateEmail(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	mock.ExpectRollback()

	user := &domain.User{Firstname: "A", Lastname: "B", Email: "a@b.com", Password: "hash"}
	err := s.SaveUser(context.Background(), user)

	// нарушение уникального индекса пробрасывается как gorm.ErrDuplicatedKey,
	// классификацию в 409 выполняет бизнес-логика
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- GetUserByEmail ---

func TestGetUserByEmail(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(1, "A", "B", "a@b.com", "hash"))

	user, err := s.GetUserByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "hash", user.Password)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := s.GetUserByEmail(context.Background(), "nobody@b.com")
	assert.NoError(t, err, "not found is not a storage error")
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- GetUserProfileByEmail ---

func TestGetUserProfileByEmailSelectsOnlyPublicColumns(t *testing.T) {
	s, mock := newMockStorage(t)

	// ожидание зафиксировано на точной проекции: запрос, выбирающий
	// колонку password (или все колонки), ему не соответствует
	mock.ExpectQuery(`SELECT "id","firstname","lastname","email" FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "firstname", "lastname", "email"}).
			AddRow(1, "A", "B", "a@b.com"))

	user, err := s.GetUserProfileByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "A", user.Firstname)
	assert.Equal(t, "B", user.Lastname)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "", user.Password)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserProfileByEmailNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT "id","firstname","lastname","email" FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "firstname", "lastname", "email"}))

	user, err := s.GetUserProfileByEmail(context.Background(), "nobody@b.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- GetUserByID ---

func TestGetUserByID(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(1, "A", "B", "a@b.com", "hash"))

	user, err := s.GetUserByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := s.GetUserByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailQueryFailure(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(errors.New("connection refused"))

	user, err := s.GetUserByEmail(context.Background(), "a@b.com")
	assert.Error(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
