package routes

import (
	"github.com/dopeWeb/Library-Management-System-API/src/controllers"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(router *gin.Engine, service *services.CustomerService) {

	customerController := controllers.NewCustomerController(service)

	customers := router.Group("/customers")
	{
		customers.GET("/", customerController.GetAllCustomers)
		customers.POST("/", customerController.CreateCustomer)
		customers.GET("/search", customerController.FindCustomersByName)
		customers.GET("/id", customerController.GetCustomerID)
		customers.DELETE("/:ref", customerController.RemoveCustomer)
		customers.POST("/:ref/restore", customerController.RestoreCustomer)
	}
}
