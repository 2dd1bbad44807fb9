package seed

import (
	"Bowl-Builder-Backend/entities"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var catalog = []entities.Ingredient{
	{Name: "Greek Yogurt", Calories: 140.0, Protein: 22.0, Fiber: 0.5, Sugar: 7.5},
	{Name: "Plain Yogurt", Calories: 140.0, Protein: 23.0, Fiber: 0.0, Sugar: 7.0},
	{Name: "Strawberry Yogurt", Calories: 160.0, Protein: 7.0, Fiber: 0.5, Sugar: 23.0},
	{Name: "Banana", Calories: 107.5, Protein: 1.3, Fiber: 3.0, Sugar: 14.5, IconFilename: "ingredients/banana_icon.PNG", BowlImageFilename: "ingredients/banana_slices.PNG"},
	{Name: "Blueberries", Calories: 87.5, Protein: 1.0, Fiber: 3.5, Sugar: 15.0, IconFilename: "ingredients/blueberry_icon.PNG", BowlImageFilename: "ingredients/blueberry_clump.PNG"},
	{Name: "Strawberry", Calories: 5.0, Protein: 0.1, Fiber: 1.0, Sugar: 0.7, IconFilename: "ingredients/strawberry_icon.png", BowlImageFilename: "ingredients/strawberry_slices.PNG"},
	{Name: "Honey", Calories: 64.0, Protein: 0.0, Fiber: 0.0, Sugar: 17.0, IconFilename: "ingredients/honey_bottle.PNG", BowlImageFilename: "ingredients/honey_drizzle.PNG", IsDrizzle: true},
	{Name: "Nuts", Calories: 575.0, Protein: 17.5, Fiber: 7.0, Sugar: 5.0, IconFilename: "ingredients/nuts_icon.png", BowlImageFilename: "ingredients/nuts_slices.png"},
	{Name: "Peanut Butter", Calories: 95.0, Protein: 3.5, Fiber: 1.5, Sugar: 1.5, IconFilename: "ingredients/peanut_icon.png", BowlImageFilename: "ingredients/peanut_drizzle.png", IsDrizzle: true},
}

// SeedIngredients upserts the fixed catalog by name so restarts refresh the
// default nutrition values without duplicating rows.
func SeedIngredients(db *gorm.DB) error {
	for _, item := range catalog {
		var existing entities.Ingredient
		err := db.Where("name = ?", item.Name).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Error seeding ingredient %s: %v", item.Name, err)
				return err
			}
			item.ID = uuid.New()
			if err := db.Create(&item).Error; err != nil {
				log.Printf("Error seeding ingredient %s: %v", item.Name, err)
				return err
			}
			continue
		}

		existing.Calories = item.Calories
		existing.Protein = item.Protein
		existing.Fiber = item.Fiber
		existing.Sugar = item.Sugar
		existing.IconFilename = item.IconFilename
		existing.BowlImageFilename = item.BowlImageFilename
		existing.IsDrizzle = item.IsDrizzle
		if err := db.Save(&existing).Error; err != nil {
			log.Printf("Error seeding ingredient %s: %v", item.Name, err)
			return err
		}
	}

	fmt.Println("Ingredient catalog seeded")
	return nil
}
