package repository_test

import (
	"context"
	"testing"
	"time"

	"planview/internal/model"
	"planview/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestAccountRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	accountRepo := repository.NewAccountRepository(gormDB)

	accountID := uuid.New()
	account := &model.Account{
		ID:             accountID,
		Email:          "test@example.com",
		HashedPassword: "hashed_password",
		Name:           "Test Account",
	}

	// Ожидаем SQL запрос на создание учетной записи
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(accountID.String()))
	mock.ExpectCommit()

	// Act
	err := accountRepo.Create(context.Background(), account)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmail_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	accountRepo := repository.NewAccountRepository(gormDB)

	accountID := uuid.New()
	email := "test@example.com"

	mock.ExpectQuery(`SELECT .* FROM "accounts" WHERE email = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "created_at"}).
			AddRow(accountID.String(), email, "hashed_password", "Test Account", time.Now()))

	// Act
	account, err := accountRepo.FindByEmail(context.Background(), email)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, email, account.Email)
	assert.Equal(t, "Test Account", account.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	accountRepo := repository.NewAccountRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "accounts" WHERE email = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	account, err := accountRepo.FindByEmail(context.Background(), "nobody@example.com")

	// Assert
	assert.NoError(t, err) // отсутствие записи не является ошибкой
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmail_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	accountRepo := repository.NewAccountRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "accounts" WHERE email = .*`).
		WillReturnError(assert.AnError)

	// Act
	account, err := accountRepo.FindByEmail(context.Background(), "test@example.com")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}
