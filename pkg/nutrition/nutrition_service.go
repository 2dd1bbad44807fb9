package nutrition

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"Bowl-Builder-Backend/pkg/bowl"
	"Bowl-Builder-Backend/pkg/ingredient"
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
)

// Tag thresholds, inclusive lower bounds evaluated highest tier first.
const (
	highProteinThreshold     = 20.0
	moderateProteinThreshold = 10.0
	highFiberThreshold       = 6.0
	moderateFiberThreshold   = 3.0
	highSugarThreshold       = 20.0
	moderateSugarThreshold   = 10.0
)

type (
	NutritionService interface {
		Aggregate(ctx context.Context, bowlID, userID string) (domain.BowlNutritionResponse, error)
	}

	nutritionService struct {
		bowlRepository       bowl.BowlRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewNutritionService(bowlRepository bowl.BowlRepository, ingredientRepository ingredient.IngredientRepository) NutritionService {
	return &nutritionService{
		bowlRepository:       bowlRepository,
		ingredientRepository: ingredientRepository,
	}
}

// Aggregate computes per-line and total nutrition for a bowl as seen by the
// acting user: each line uses the user's override when one exists, the
// catalog default otherwise, multiplied by the line quantity. Lines whose
// ingredient has left the catalog are skipped. Totals are summed at full
// precision and rounded only for display.
func (s *nutritionService) Aggregate(ctx context.Context, bowlID, userID string) (domain.BowlNutritionResponse, error) {
	b, err := s.bowlRepository.GetBowlByID(ctx, bowlID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BowlNutritionResponse{}, domain.ErrBowlNotFound
		}
		return domain.BowlNutritionResponse{}, err
	}

	lines, err := s.bowlRepository.GetLines(ctx, bowlID)
	if err != nil {
		return domain.BowlNutritionResponse{}, err
	}

	var totalCalories, totalProtein, totalFiber, totalSugar float64
	ingredients := make([]domain.BowlLineNutrition, 0, len(lines))

	for _, line := range lines {
		ing, err := s.ingredientRepository.GetIngredientByID(ctx, line.IngredientID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Stale line: the catalog entry is gone. Tolerated, not an error.
				continue
			}
			return domain.BowlNutritionResponse{}, err
		}

		perUnit, err := s.resolveNutrition(ctx, ing, userID)
		if err != nil {
			return domain.BowlNutritionResponse{}, err
		}

		calories := perUnit.Calories * line.Quantity
		protein := perUnit.Protein * line.Quantity
		fiber := perUnit.Fiber * line.Quantity
		sugar := perUnit.Sugar * line.Quantity

		totalCalories += calories
		totalProtein += protein
		totalFiber += fiber
		totalSugar += sugar

		ingredients = append(ingredients, domain.BowlLineNutrition{
			IngredientID:      ing.ID.String(),
			Name:              ing.Name,
			Quantity:          line.Quantity,
			Unit:              UnitFor(ing.Name, line.Quantity),
			Calories:          round2(calories),
			Protein:           round2(protein),
			Fiber:             round2(fiber),
			Sugar:             round2(sugar),
			IconFilename:      ing.IconFilename,
			BowlImageFilename: ing.BowlImageFilename,
			IsDrizzle:         ing.IsDrizzle,
		})
	}

	return domain.BowlNutritionResponse{
		Bowl: domain.BowlResponse{
			ID:     b.ID.String(),
			Name:   b.Name,
			UserID: b.UserID.String(),
			Saved:  b.Saved,
		},
		Ingredients:   ingredients,
		TotalCalories: round2(totalCalories),
		TotalProtein:  round2(totalProtein),
		TotalFiber:    round2(totalFiber),
		TotalSugar:    round2(totalSugar),
		Tags:          deriveTags(totalProtein, totalFiber, totalSugar),
	}, nil
}

type perUnitNutrition struct {
	Calories float64
	Protein  float64
	Fiber    float64
	Sugar    float64
}

func (s *nutritionService) resolveNutrition(ctx context.Context, ing *entities.Ingredient, userID string) (perUnitNutrition, error) {
	override, err := s.ingredientRepository.GetOverride(ctx, userID, ing.ID.String())
	if err == nil {
		return perUnitNutrition{
			Calories: override.Calories,
			Protein:  override.Protein,
			Fiber:    override.Fiber,
			Sugar:    override.Sugar,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return perUnitNutrition{}, err
	}

	return perUnitNutrition{
		Calories: ing.Calories,
		Protein:  ing.Protein,
		Fiber:    ing.Fiber,
		Sugar:    ing.Sugar,
	}, nil
}

// deriveTags classifies the raw (pre-rounding) totals into exactly three
// tags, one per nutrient. An empty bowl is Low across the board.
func deriveTags(totalProtein, totalFiber, totalSugar float64) []string {
	tags := make([]string, 0, 3)

	switch {
	case totalProtein >= highProteinThreshold:
		tags = append(tags, domain.TagHighProtein)
	case totalProtein >= moderateProteinThreshold:
		tags = append(tags, domain.TagModerateProtein)
	default:
		tags = append(tags, domain.TagLowProtein)
	}

	switch {
	case totalFiber >= highFiberThreshold:
		tags = append(tags, domain.TagHighFiber)
	case totalFiber >= moderateFiberThreshold:
		tags = append(tags, domain.TagModerateFiber)
	default:
		tags = append(tags, domain.TagLowFiber)
	}

	switch {
	case totalSugar >= highSugarThreshold:
		tags = append(tags, domain.TagHighSugar)
	case totalSugar >= moderateSugarThreshold:
		tags = append(tags, domain.TagModerateSugar)
	default:
		tags = append(tags, domain.TagLowSugar)
	}

	return tags
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
