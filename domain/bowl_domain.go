package domain

import (
	"errors"
)

var (
	MessageSuccessCreateBowl       = "bowl created successfully"
	MessageSuccessGetBowl          = "bowl retrieved successfully"
	MessageSuccessGetSavedBowls    = "saved bowls retrieved successfully"
	MessageSuccessSaveBowl         = "bowl saved successfully"
	MessageSuccessRenameBowl       = "bowl renamed successfully"
	MessageSuccessDeleteBowl       = "bowl deleted successfully"
	MessageSuccessResetBowl        = "working bowl reset"
	MessageSuccessAddIngredient    = "ingredient added to bowl"
	MessageSuccessRemoveIngredient = "ingredient removed from bowl"

	MessageFailedCreateBowl       = "failed to create bowl"
	MessageFailedGetBowl          = "failed to retrieve bowl"
	MessageFailedGetSavedBowls    = "failed to retrieve saved bowls"
	MessageFailedSaveBowl         = "failed to save bowl"
	MessageFailedRenameBowl       = "failed to rename bowl"
	MessageFailedDeleteBowl       = "failed to delete bowl"
	MessageFailedResetBowl        = "failed to reset working bowl"
	MessageFailedAddIngredient    = "failed to add ingredient to bowl"
	MessageFailedRemoveIngredient = "failed to remove ingredient from bowl"

	ErrBowlNotFound    = errors.New("bowl not found")
	ErrLineNotFound    = errors.New("ingredient not found in bowl")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyBowlName   = errors.New("bowl name cannot be empty")
)

// DefaultBowlName is the name a working bowl is created with.
const DefaultBowlName = "My Bowl"

type (
	CreateBowlRequest struct {
		Name string `json:"name" validate:"required,min=1,max=100"`
	}

	RenameBowlRequest struct {
		Name string `json:"name" validate:"max=100"`
	}

	UpsertLineRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	BowlResponse struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		UserID string `json:"user_id"`
		Saved  bool   `json:"saved"`
	}
)
