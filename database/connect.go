package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finance-tracker-go-be/models"
)

// DB instance
var DB *gorm.DB

const retryInterval = 5 * time.Second

// ConnectDB connects to the database, retrying indefinitely with a
// fixed backoff until the connection succeeds, then runs migrations.
func ConnectDB(dsn string) {
	for {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			DB = db
			break
		}
		log.Printf("Database connection error: %v", err)
		log.Printf("Retrying in %s...", retryInterval)
		time.Sleep(retryInterval)
	}

	log.Println("Connected to database successfully")

	log.Println("Running migrations...")
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database. \n", err)
	}
	log.Println("Database migrated successfully")
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Budget{})
}
