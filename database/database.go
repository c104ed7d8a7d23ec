package database

import (
	"log"
	"os"

	"wedlock-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the sqlite file from DB_PATH (default wedlock.db) and
// runs migrations. Fatal on failure, the server is useless without storage.
func ConnectDatabase() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "wedlock.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect database: ", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.PaymentRecord{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	DB = db
}
