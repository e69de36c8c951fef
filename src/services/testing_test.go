package services

import (
	"testing"

	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
// A single connection keeps every query on the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.BookModel{},
		&models.CustomerModel{},
		&models.LoanModel{},
	))
	return db
}

func createBook(t *testing.T, db *gorm.DB, name string, bookType models.BookType) *models.BookModel {
	t.Helper()
	book := &models.BookModel{
		Name:          name,
		Author:        "Test Author",
		YearPublished: 1950,
		Type:          bookType,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func createCustomer(t *testing.T, db *gorm.DB, email string) *models.CustomerModel {
	t.Helper()
	customer := &models.CustomerModel{
		Name:  "Test Customer",
		City:  "Springfield",
		Age:   40,
		Email: email,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}
