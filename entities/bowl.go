package entities

import (
	"github.com/google/uuid"
)

type Bowl struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name   string    `json:"name"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Saved  bool      `gorm:"default:false" json:"saved"`

	User        *User             `gorm:"foreignKey:UserID"`
	Ingredients []*BowlIngredient `gorm:"foreignKey:BowlID"`
	Timestamp
}

type BowlIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BowlID       uuid.UUID `gorm:"uniqueIndex:idx_bowl_ingredient" json:"bowl_id"`
	IngredientID uuid.UUID `gorm:"uniqueIndex:idx_bowl_ingredient" json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`

	Bowl       *Bowl       `gorm:"foreignKey:BowlID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
