// Seeds the development database with a small pantry so the API has data to
// serve without going through the HTTP layer.
//
// Usage: go run scripts/seed_pantry.go
package main

import (
	"time"

	"github.com/freshkeeper/freshkeeper-api/internal/config"
	"github.com/freshkeeper/freshkeeper-api/internal/database"
	"github.com/freshkeeper/freshkeeper-api/internal/models"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: conf.DBDriver,
		Path:   conf.DBPath,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := db.AutoMigrate(&models.Ingredient{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate schema")
	}

	today := time.Now()
	date := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	pantry := []models.Ingredient{
		{Name: "Milk", ExpiryDate: date(2), Quantity: "1 gallon", Category: "Dairy"},
		{Name: "Bread", ExpiryDate: date(3), Quantity: "1 loaf", Category: "Bakery"},
		{Name: "Apples", ExpiryDate: date(10), Quantity: "6 pieces", Category: "Fruit"},
		{Name: "Chicken", ExpiryDate: date(-1), Quantity: "2 lbs", Category: "Meat"},
		{Name: "Yogurt", ExpiryDate: date(14), Quantity: "4 cups", Category: "Dairy"},
	}

	for i := range pantry {
		if err := db.Create(&pantry[i]).Error; err != nil {
			log.WithError(err).WithField("name", pantry[i].Name).Fatal("Failed to insert ingredient")
		}
		log.WithFields(log.Fields{
			"id":         pantry[i].ID,
			"name":       pantry[i].Name,
			"expiryDate": pantry[i].ExpiryDate,
		}).Info("Inserted ingredient")
	}
	log.Infof("Seeded %d ingredients", len(pantry))
}
