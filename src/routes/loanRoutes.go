package routes

import (
	"github.com/dopeWeb/Library-Management-System-API/src/controllers"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLoanRoutes(router *gin.Engine, service *services.LoanService, overdueService *services.OverdueService) {

	loanController := controllers.NewLoanController(service, overdueService)

	loans := router.Group("/loans")
	{
		loans.GET("/", loanController.GetAllLoans)
		loans.POST("/", loanController.LoanBook)
		loans.POST("/return", loanController.ReturnBook)
		loans.GET("/overdue", loanController.GetOverdueLoans)
	}
}
