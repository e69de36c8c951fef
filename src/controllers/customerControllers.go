package controllers

import (
	"net/http"

	"github.com/dopeWeb/Library-Management-System-API/src/apperrors"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

// GetAllCustomers handles GET requests to list all non-deleted customers
func (c *CustomerController) GetAllCustomers(ctx *gin.Context) {
	customers, err := c.service.GetAllCustomers()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// CreateCustomer handles POST requests to register a customer
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var customer models.CustomerModel
	if err := ctx.ShouldBindJSON(&customer); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if customer.Name == "" || customer.City == "" || customer.Age == 0 || customer.Email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	created, err := c.service.CreateCustomer(&customer)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// RemoveCustomer handles DELETE requests to soft-delete a customer
func (c *CustomerController) RemoveCustomer(ctx *gin.Context) {
	if err := c.service.RemoveCustomer(ctx.Param("ref")); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Customer has been marked as deleted."})
}

// RestoreCustomer handles POST requests to restore a soft-deleted customer
func (c *CustomerController) RestoreCustomer(ctx *gin.Context) {
	if err := c.service.RestoreCustomer(ctx.Param("ref")); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Customer has been restored."})
}

// FindCustomersByName handles GET requests for a case-insensitive name search
func (c *CustomerController) FindCustomersByName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required."})
		return
	}

	customers, err := c.service.FindCustomersByName(name)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetCustomerID handles GET requests resolving a customer email to its id
func (c *CustomerController) GetCustomerID(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Customer email is required."})
		return
	}

	id, err := c.service.GetCustomerID(email)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
