package services

import (
	"strconv"
	"testing"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	created, err := svc.CreateBook(&models.BookModel{
		Name:          "1984",
		Author:        "George Orwell",
		YearPublished: 1949,
		Type:          models.FictionMedium,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Deleted)
}

func TestCreateBook_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	createBook(t, db, "1984", models.FictionMedium)

	_, err := svc.CreateBook(&models.BookModel{
		Name:          "1984",
		Author:        "Someone Else",
		YearPublished: 2000,
		Type:          models.FictionShort,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
}

func TestCreateBook_InvalidType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	_, err := svc.CreateBook(&models.BookModel{
		Name:          "Mystery",
		Author:        "Nobody",
		YearPublished: 2001,
		Type:          models.BookType(7),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.Invalid, apperrors.KindOf(err))
}

func TestRemoveBook_RestoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "1984", models.FictionMedium)

	require.NoError(t, svc.RemoveBook("1984"))

	var removed models.BookModel
	require.NoError(t, db.First(&removed, book.ID).Error)
	assert.True(t, removed.Deleted)

	// Removed again -> not found among non-deleted books.
	err := svc.RemoveBook("1984")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	require.NoError(t, svc.RestoreBook("1984"))

	var restored models.BookModel
	require.NoError(t, db.First(&restored, book.ID).Error)
	assert.Equal(t, book.ID, restored.ID)
	assert.Equal(t, book.Name, restored.Name)
	assert.Equal(t, book.Author, restored.Author)
	assert.Equal(t, book.Type, restored.Type)
	assert.False(t, restored.Deleted)
}

func TestRemoveBook_BlockedByActiveLoan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)
	loans := NewLoanService(db)

	createBook(t, db, "1984", models.FictionMedium)
	createCustomer(t, db, "a@x.com")

	_, err := loans.LoanBook("1984", "a@x.com")
	require.NoError(t, err)

	err = svc.RemoveBook("1984")
	require.Error(t, err)
	assert.Equal(t, apperrors.Locked, apperrors.KindOf(err))

	require.NoError(t, loans.ReturnBook("1984", "a@x.com"))
	assert.NoError(t, svc.RemoveBook("1984"))
}

// Name uniqueness holds across deleted rows too: a soft-deleted namesake
// blocks re-adding and must be restored instead.
func TestCreateBook_DeletedNamesakeStillConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "1984", models.FictionMedium)
	require.NoError(t, db.Model(book).Update("deleted", true).Error)

	_, err := svc.CreateBook(&models.BookModel{
		Name:          "1984",
		Author:        "George Orwell",
		YearPublished: 1949,
		Type:          models.FictionMedium,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
}

func TestFindBooksByName_CaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	createBook(t, db, "The Great Gatsby", models.FictionLong)

	books, err := svc.FindBooksByName("the great gatsby")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Great Gatsby", books[0].Name)

	_, err = svc.FindBooksByName("no such title")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestFindBooksByName_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "Dune", models.FictionLong)
	require.NoError(t, db.Model(book).Update("deleted", true).Error)

	_, err := svc.FindBooksByName("Dune")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestGetAllBooks_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	createBook(t, db, "Dune", models.FictionLong)
	deleted := createBook(t, db, "1984", models.FictionMedium)
	require.NoError(t, db.Model(deleted).Update("deleted", true).Error)

	books, err := svc.GetAllBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Name)
}

func TestGetBookID_IgnoresDeletedState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "Dune", models.FictionLong)
	require.NoError(t, db.Model(book).Update("deleted", true).Error)

	id, err := svc.GetBookID("Dune")
	require.NoError(t, err)
	assert.Equal(t, book.ID, id)
}

func TestRemoveBook_ByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookService(db)

	book := createBook(t, db, "Dune", models.FictionLong)
	require.NoError(t, svc.RemoveBook(strconv.Itoa(book.ID)))

	var removed models.BookModel
	require.NoError(t, db.First(&removed, book.ID).Error)
	assert.True(t, removed.Deleted)
}
