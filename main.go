package main

import (
	"log"
	"os"

	"github.com/dopeWeb/Library-Management-System-API/src/db"
	"github.com/dopeWeb/Library-Management-System-API/src/middleware"
	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"github.com/dopeWeb/Library-Management-System-API/src/routes"
	"github.com/dopeWeb/Library-Management-System-API/src/seed"
	"github.com/dopeWeb/Library-Management-System-API/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.BookModel{}, &models.CustomerModel{}, &models.LoanModel{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Demo data
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	bookService := services.NewBookService(db)
	customerService := services.NewCustomerService(db)
	loanService := services.NewLoanService(db)
	overdueService := services.NewOverdueService(db)

	// Routes setup
	routes.SetupBookRoutes(router, bookService)
	routes.SetupCustomerRoutes(router, customerService)
	routes.SetupLoanRoutes(router, loanService, overdueService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Library Management System API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
