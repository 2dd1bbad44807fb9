package ingredient

import (
	"Bowl-Builder-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error

		GetOverride(ctx context.Context, userID, ingredientID string) (*entities.UserIngredientNutrition, error)
		GetOverridesByUser(ctx context.Context, userID string) ([]*entities.UserIngredientNutrition, error)
		UpsertOverride(ctx context.Context, override *entities.UserIngredientNutrition) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) GetOverride(ctx context.Context, userID, ingredientID string) (*entities.UserIngredientNutrition, error) {
	var override entities.UserIngredientNutrition
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", userID, ingredientID).
		First(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *ingredientRepository) GetOverridesByUser(ctx context.Context, userID string) ([]*entities.UserIngredientNutrition, error) {
	var overrides []*entities.UserIngredientNutrition
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

// UpsertOverride enforces the one-override-per-(user, ingredient) invariant:
// lookup-then-write inside a transaction, with the unique index closing the
// race between concurrent first writes.
func (r *ingredientRepository) UpsertOverride(ctx context.Context, override *entities.UserIngredientNutrition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.UserIngredientNutrition
		err := tx.Where("user_id = ? AND ingredient_id = ?", override.UserID, override.IngredientID).
			First(&existing).Error
		if err == nil {
			existing.Calories = override.Calories
			existing.Protein = override.Protein
			existing.Fiber = override.Fiber
			existing.Sugar = override.Sugar
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(override).Error
	})
}
