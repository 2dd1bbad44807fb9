package ingredient

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"Bowl-Builder-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixed display order for the catalog. Ingredients not listed here sort
// after the listed ones, keeping their underlying catalog order.
var displayOrder = []string{
	"Greek Yogurt",
	"Plain Yogurt",
	"Strawberry Yogurt",
	"Banana",
	"Blueberries",
	"Strawberry",
	"Nuts",
	"Peanut Butter",
	"Honey",
}

type (
	IngredientService interface {
		GetCatalog(ctx context.Context, userID string) ([]domain.CatalogIngredientResponse, error)
		UpdateNutrition(ctx context.Context, req domain.UpdateNutritionRequest, userID string) (domain.UpdateNutritionResponse, error)
		UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func SortIngredients(ingredients []*entities.Ingredient) []*entities.Ingredient {
	orderMap := make(map[string]int, len(displayOrder))
	for idx, name := range displayOrder {
		orderMap[name] = idx
	}
	rank := func(name string) int {
		if idx, ok := orderMap[name]; ok {
			return idx
		}
		return len(displayOrder)
	}
	sorted := make([]*entities.Ingredient, len(ingredients))
	copy(sorted, ingredients)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i].Name) < rank(sorted[j].Name)
	})
	return sorted
}

func (s *ingredientService) GetCatalog(ctx context.Context, userID string) ([]domain.CatalogIngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := s.ingredientRepository.GetOverridesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	overrideMap := make(map[uuid.UUID]*entities.UserIngredientNutrition, len(overrides))
	for _, o := range overrides {
		overrideMap[o.IngredientID] = o
	}

	response := make([]domain.CatalogIngredientResponse, 0, len(ingredients))
	for _, ing := range SortIngredients(ingredients) {
		item := domain.CatalogIngredientResponse{
			ID:           ing.ID.String(),
			Name:         ing.Name,
			Calories:     ing.Calories,
			Protein:      ing.Protein,
			Fiber:        ing.Fiber,
			Sugar:        ing.Sugar,
			IconURL:      s.s3.GetPublicLinkKey(ing.IconFilename),
			BowlImageURL: s.s3.GetPublicLinkKey(ing.BowlImageFilename),
			IsDrizzle:    ing.IsDrizzle,
		}
		if override, ok := overrideMap[ing.ID]; ok {
			item.Calories = override.Calories
			item.Protein = override.Protein
			item.Fiber = override.Fiber
			item.Sugar = override.Sugar
			item.Overridden = true
		}
		response = append(response, item)
	}

	return response, nil
}

func (s *ingredientService) UpdateNutrition(ctx context.Context, req domain.UpdateNutritionRequest, userID string) (domain.UpdateNutritionResponse, error) {
	if req.Calories < 0 || req.Protein < 0 || req.Fiber < 0 || req.Sugar < 0 {
		return domain.UpdateNutritionResponse{}, domain.ErrNegativeNutrition
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpdateNutritionResponse{}, domain.ErrIngredientNotFound
		}
		return domain.UpdateNutritionResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UpdateNutritionResponse{}, domain.ErrParseUUID
	}

	override := &entities.UserIngredientNutrition{
		ID:           uuid.New(),
		UserID:       userUUID,
		IngredientID: ingredient.ID,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Fiber:        req.Fiber,
		Sugar:        req.Sugar,
	}

	if err := s.ingredientRepository.UpsertOverride(ctx, override); err != nil {
		return domain.UpdateNutritionResponse{}, err
	}

	return domain.UpdateNutritionResponse{
		IngredientID: ingredient.ID.String(),
		Updated:      true,
	}, nil
}

func (s *ingredientService) UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("ingredient-%s", strings.ReplaceAll(strings.ToLower(ingredient.Name), " ", "-"))

	var objectKey string
	if ingredient.IconFilename != "" {
		objectKey, err = s.s3.UpdateFile(ingredient.IconFilename, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "ingredients", storage.AllowImage...)
	}
	if err != nil {
		return err
	}

	ingredient.IconFilename = objectKey
	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}
