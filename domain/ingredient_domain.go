package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessUpdateNutrition  = "nutrition values updated successfully"
	MessageSuccessUploadIngredient = "ingredient image uploaded successfully"

	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedUpdateNutrition  = "failed to update nutrition values"
	MessageFailedUploadIngredient = "failed to upload ingredient image"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrNegativeNutrition  = errors.New("nutrition values must be >= 0")
)

type (
	UpdateNutritionRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Calories     float64 `json:"calories" validate:"min=0"`
		Protein      float64 `json:"protein" validate:"min=0"`
		Fiber        float64 `json:"fiber" validate:"min=0"`
		Sugar        float64 `json:"sugar" validate:"min=0"`
	}

	UpdateNutritionResponse struct {
		IngredientID string `json:"ingredient_id"`
		Updated      bool   `json:"updated"`
	}

	UploadIngredientImageRequest struct {
		IngredientID string                `json:"ingredient_id" form:"ingredient_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// CatalogIngredientResponse carries the acting user's effective nutrition:
	// their override when present, the catalog default otherwise.
	CatalogIngredientResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Calories     float64 `json:"calories"`
		Protein      float64 `json:"protein"`
		Fiber        float64 `json:"fiber"`
		Sugar        float64 `json:"sugar"`
		Overridden   bool    `json:"overridden"`
		IconURL      string  `json:"icon_url,omitempty"`
		BowlImageURL string  `json:"bowl_image_url,omitempty"`
		IsDrizzle    bool    `json:"is_drizzle"`
	}
)
