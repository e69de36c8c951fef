package routes

import (
	"github.com/dopeWeb/Library-Management-System-API/src/controllers"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService) {

	bookController := controllers.NewBookController(service)

	books := router.Group("/books")
	{
		books.GET("/", bookController.GetAllBooks)
		books.POST("/", bookController.CreateBook)
		books.GET("/search", bookController.FindBooksByName)
		books.GET("/id", bookController.GetBookID)
		books.DELETE("/:ref", bookController.RemoveBook)
		books.POST("/:ref/restore", bookController.RestoreBook)
	}
}
