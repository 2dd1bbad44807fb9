package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `gorm:"uniqueIndex" json:"name"`
	Calories          float64   `json:"calories"`
	Protein           float64   `json:"protein"`
	Fiber             float64   `json:"fiber"`
	Sugar             float64   `json:"sugar"`
	IconFilename      string    `json:"icon_filename,omitempty"`
	BowlImageFilename string    `json:"bowl_image_filename,omitempty"`
	IsDrizzle         bool      `json:"is_drizzle"`

	Timestamp
}

type UserIngredientNutrition struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_user_ingredient" json:"user_id"`
	IngredientID uuid.UUID `gorm:"uniqueIndex:idx_user_ingredient" json:"ingredient_id"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Fiber        float64   `json:"fiber"`
	Sugar        float64   `json:"sugar"`

	User       *User       `gorm:"foreignKey:UserID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
