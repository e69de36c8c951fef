package controllers

import (
	"net/http"
	"time"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/dtos"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

type LoanController struct {
	service        *services.LoanService
	overdueService *services.OverdueService
}

func NewLoanController(service *services.LoanService, overdueService *services.OverdueService) *LoanController {
	return &LoanController{service: service, overdueService: overdueService}
}

// GetAllLoans handles GET requests to list every loan record
func (c *LoanController) GetAllLoans(ctx *gin.Context) {
	loans, err := c.service.GetAllLoans()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// LoanBook handles POST requests to open a loan
func (c *LoanController) LoanBook(ctx *gin.Context) {
	var req dtos.LoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BookRef() == "" || req.CustomerRef() == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Both book name and customer email are required."})
		return
	}

	receipt, err := c.service.LoanBook(req.BookRef(), req.CustomerRef())
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, receipt)
}

// ReturnBook handles POST requests to close a loan
func (c *LoanController) ReturnBook(ctx *gin.Context) {
	var req dtos.LoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BookRef() == "" || req.CustomerRef() == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Both book name and customer email are required."})
		return
	}

	if err := c.service.ReturnBook(req.BookRef(), req.CustomerRef()); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book returned successfully."})
}

// GetOverdueLoans handles GET requests for loans past their due date
func (c *LoanController) GetOverdueLoans(ctx *gin.Context) {
	overdue, err := c.overdueService.ListOverdue(time.Now().UTC())
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, overdue)
}
