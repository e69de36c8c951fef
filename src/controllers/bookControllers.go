package controllers

import (
	"net/http"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllBooks handles GET requests to list all non-deleted books
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.service.GetAllBooks()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// CreateBook handles POST requests to add a book to the catalog
func (c *BookController) CreateBook(ctx *gin.Context) {
	var book models.BookModel
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.Name == "" || book.Author == "" || book.YearPublished == 0 || book.Type == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	created, err := c.service.CreateBook(&book)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// RemoveBook handles DELETE requests to soft-delete a book
func (c *BookController) RemoveBook(ctx *gin.Context) {
	if err := c.service.RemoveBook(ctx.Param("ref")); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book has been marked as deleted."})
}

// RestoreBook handles POST requests to restore a soft-deleted book
func (c *BookController) RestoreBook(ctx *gin.Context) {
	if err := c.service.RestoreBook(ctx.Param("ref")); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book has been restored."})
}

// FindBooksByName handles GET requests for a case-insensitive name search
func (c *BookController) FindBooksByName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Book name is required."})
		return
	}

	books, err := c.service.FindBooksByName(name)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// GetBookID handles GET requests resolving a book name to its id
func (c *BookController) GetBookID(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Book name is required."})
		return
	}

	id, err := c.service.GetBookID(name)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
