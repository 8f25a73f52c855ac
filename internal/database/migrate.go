package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/diettrack/backend/internal/models"
)

// RunMigrations brings the schema up to date for all tracked models
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running GORM auto-migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealItem{},
	)
}
