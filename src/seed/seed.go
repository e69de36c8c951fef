package seed

import (
	"log"

	"github.com/dopeWeb/Library-Management-System-API/src/models"
	"gorm.io/gorm"
)

// Seed inserts the demo catalog and customers when the tables are empty.
func Seed(db *gorm.DB) {
	var customerCount int64
	if err := db.Model(&models.CustomerModel{}).Count(&customerCount).Error; err != nil {
		log.Printf("Failed to count customers: %v\n", err)
		return
	}
	if customerCount == 0 {
		customers := []models.CustomerModel{
			{Name: "John Doe", City: "New York", Age: 30, Email: "john.doe@example.com"},
			{Name: "Jane Smith", City: "Los Angeles", Age: 25, Email: "jane.smith@example.com"},
			{Name: "Jade Bmith", City: "california", Age: 55, Email: "jade.bmith@example.com"},
		}
		if err := db.Create(&customers).Error; err != nil {
			log.Printf("Failed to seed customers: %v\n", err)
		} else {
			log.Printf("Seeded %d customers\n", len(customers))
		}
	} else {
		log.Println("Customers already seeded")
	}

	var bookCount int64
	if err := db.Model(&models.BookModel{}).Count(&bookCount).Error; err != nil {
		log.Printf("Failed to count books: %v\n", err)
		return
	}
	if bookCount == 0 {
		books := []models.BookModel{
			{Name: "The Great Gatsby", Author: "F. Scott Fitzgerald", YearPublished: 1925, Type: models.FictionLong},
			{Name: "1984", Author: "George Orwell", YearPublished: 1949, Type: models.FictionMedium},
			{Name: "To Kill a Mockingbird", Author: "Harper Lee", YearPublished: 1960, Type: models.FictionShort},
			{Name: "Crime and Punishment", Author: "Fyodor Dostoevsky", YearPublished: 1866, Type: models.FictionLong},
		}
		if err := db.Create(&books).Error; err != nil {
			log.Printf("Failed to seed books: %v\n", err)
		} else {
			log.Printf("Seeded %d books\n", len(books))
		}
	} else {
		log.Println("Books already seeded")
	}
}
