package migration

import (
	"Bowl-Builder-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserIngredientNutrition{}); err != nil {
		log.Fatalf("Error migrating nutrition override database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Bowl{}); err != nil {
		log.Fatalf("Error migrating bowl database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BowlIngredient{}); err != nil {
		log.Fatalf("Error migrating bowl ingredient database: %v", err)
		return err
	}

	// AutoMigrate cannot express a partial index. Each user keeps at most one
	// unsaved bowl, so enforce it at the database level too.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_working_bowl_per_user ON bowls (user_id) WHERE NOT saved;")

	fmt.Println("Database migration complete")
	return nil
}
