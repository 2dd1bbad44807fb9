package nutrition

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeBowlRepository struct {
	bowls map[string]*entities.Bowl
	lines []*entities.BowlIngredient
}

func newFakeBowlRepository() *fakeBowlRepository {
	return &fakeBowlRepository{bowls: make(map[string]*entities.Bowl)}
}

func (r *fakeBowlRepository) CreateBowl(_ context.Context, b *entities.Bowl) error {
	r.bowls[b.ID.String()] = b
	return nil
}

func (r *fakeBowlRepository) GetBowlByID(_ context.Context, id string) (*entities.Bowl, error) {
	b, ok := r.bowls[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeBowlRepository) UpdateBowl(_ context.Context, b *entities.Bowl) error {
	r.bowls[b.ID.String()] = b
	return nil
}

func (r *fakeBowlRepository) DeleteBowl(_ context.Context, id string) error {
	delete(r.bowls, id)
	kept := r.lines[:0]
	for _, line := range r.lines {
		if line.BowlID.String() != id {
			kept = append(kept, line)
		}
	}
	r.lines = kept
	return nil
}

func (r *fakeBowlRepository) GetWorkingBowl(_ context.Context, userID string) (*entities.Bowl, error) {
	for _, b := range r.bowls {
		if b.UserID.String() == userID && !b.Saved {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBowlRepository) GetSavedBowls(_ context.Context, userID string) ([]*entities.Bowl, error) {
	var out []*entities.Bowl
	for _, b := range r.bowls {
		if b.UserID.String() == userID && b.Saved {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBowlRepository) GetLines(_ context.Context, bowlID string) ([]*entities.BowlIngredient, error) {
	var out []*entities.BowlIngredient
	for _, line := range r.lines {
		if line.BowlID.String() == bowlID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *fakeBowlRepository) UpsertLine(_ context.Context, line *entities.BowlIngredient) error {
	for _, existing := range r.lines {
		if existing.BowlID == line.BowlID && existing.IngredientID == line.IngredientID {
			existing.Quantity = line.Quantity
			return nil
		}
	}
	r.lines = append(r.lines, line)
	return nil
}

func (r *fakeBowlRepository) DeleteLine(_ context.Context, bowlID, ingredientID string) error {
	for i, line := range r.lines {
		if line.BowlID.String() == bowlID && line.IngredientID.String() == ingredientID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeIngredientRepository struct {
	ingredients map[uuid.UUID]*entities.Ingredient
	overrides   []*entities.UserIngredientNutrition
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{ingredients: make(map[uuid.UUID]*entities.Ingredient)}
}

func (r *fakeIngredientRepository) GetIngredients(_ context.Context) ([]*entities.Ingredient, error) {
	var out []*entities.Ingredient
	for _, ing := range r.ingredients {
		out = append(out, ing)
	}
	return out, nil
}

func (r *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	for _, ing := range r.ingredients {
		if ing.ID.String() == id {
			return ing, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) GetIngredientByName(_ context.Context, name string) (*entities.Ingredient, error) {
	for _, ing := range r.ingredients {
		if ing.Name == name {
			return ing, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) UpdateIngredient(_ context.Context, ing *entities.Ingredient) error {
	r.ingredients[ing.ID] = ing
	return nil
}

func (r *fakeIngredientRepository) GetOverride(_ context.Context, userID, ingredientID string) (*entities.UserIngredientNutrition, error) {
	for _, o := range r.overrides {
		if o.UserID.String() == userID && o.IngredientID.String() == ingredientID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) GetOverridesByUser(_ context.Context, userID string) ([]*entities.UserIngredientNutrition, error) {
	var out []*entities.UserIngredientNutrition
	for _, o := range r.overrides {
		if o.UserID.String() == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepository) UpsertOverride(_ context.Context, override *entities.UserIngredientNutrition) error {
	for _, existing := range r.overrides {
		if existing.UserID == override.UserID && existing.IngredientID == override.IngredientID {
			existing.Calories = override.Calories
			existing.Protein = override.Protein
			existing.Fiber = override.Fiber
			existing.Sugar = override.Sugar
			return nil
		}
	}
	r.overrides = append(r.overrides, override)
	return nil
}

func seedBowl(bowls *fakeBowlRepository, userID uuid.UUID) *entities.Bowl {
	b := &entities.Bowl{ID: uuid.New(), Name: "My Bowl", UserID: userID}
	bowls.bowls[b.ID.String()] = b
	return b
}

func seedIngredient(ingredients *fakeIngredientRepository, name string, calories, protein, fiber, sugar float64) *entities.Ingredient {
	ing := &entities.Ingredient{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Fiber:    fiber,
		Sugar:    sugar,
	}
	ingredients.ingredients[ing.ID] = ing
	return ing
}

func addLine(bowls *fakeBowlRepository, bowlID, ingredientID uuid.UUID, quantity float64) {
	bowls.lines = append(bowls.lines, &entities.BowlIngredient{
		ID:           uuid.New(),
		BowlID:       bowlID,
		IngredientID: ingredientID,
		Quantity:     quantity,
	})
}

func TestAggregateEmptyBowl(t *testing.T) {
	t.Parallel()

	bowls := newFakeBowlRepository()
	ingredients := newFakeIngredientRepository()
	userID := uuid.New()
	b := seedBowl(bowls, userID)

	service := NewNutritionService(bowls, ingredients)
	res, err := service.Aggregate(context.Background(), b.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if res.TotalCalories != 0 || res.TotalProtein != 0 || res.TotalFiber != 0 || res.TotalSugar != 0 {
		t.Errorf("empty bowl totals = %v/%v/%v/%v, want all zero",
			res.TotalCalories, res.TotalProtein, res.TotalFiber, res.TotalSugar)
	}
	if len(res.Ingredients) != 0 {
		t.Errorf("empty bowl has %d lines, want 0", len(res.Ingredients))
	}
	wantTags := []string{domain.TagLowProtein, domain.TagLowFiber, domain.TagLowSugar}
	assertTags(t, res.Tags, wantTags)
}

func TestAggregateBowlNotFound(t *testing.T) {
	t.Parallel()

	service := NewNutritionService(newFakeBowlRepository(), newFakeIngredientRepository())
	_, err := service.Aggregate(context.Background(), uuid.NewString(), uuid.NewString())
	if !errors.Is(err, domain.ErrBowlNotFound) {
		t.Fatalf("Aggregate() error = %v, want ErrBowlNotFound", err)
	}
}

func TestAggregateOverridePrecedence(t *testing.T) {
	t.Parallel()

	bowls := newFakeBowlRepository()
	ingredients := newFakeIngredientRepository()
	owner := uuid.New()
	other := uuid.New()

	banana := seedIngredient(ingredients, "Banana", 107.5, 1.3, 3.0, 14.5)
	b := seedBowl(bowls, owner)
	addLine(bowls, b.ID, banana.ID, 2)

	ingredients.overrides = append(ingredients.overrides, &entities.UserIngredientNutrition{
		ID:           uuid.New(),
		UserID:       owner,
		IngredientID: banana.ID,
		Calories:     200,
		Protein:      2,
		Fiber:        3,
		Sugar:        10,
	})

	service := NewNutritionService(bowls, ingredients)

	res, err := service.Aggregate(context.Background(), b.ID.String(), owner.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if res.TotalCalories != 400 {
		t.Errorf("owner total calories = %v, want 400 (override 200 x 2)", res.TotalCalories)
	}
	if res.Ingredients[0].Calories != 400 {
		t.Errorf("owner line calories = %v, want 400", res.Ingredients[0].Calories)
	}

	// A different viewer of the same bowl falls back to catalog defaults.
	res, err = service.Aggregate(context.Background(), b.ID.String(), other.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if res.TotalCalories != 215 {
		t.Errorf("other user total calories = %v, want 215 (default 107.5 x 2)", res.TotalCalories)
	}
}

func TestAggregateSkipsStaleLines(t *testing.T) {
	t.Parallel()

	bowls := newFakeBowlRepository()
	ingredients := newFakeIngredientRepository()
	userID := uuid.New()

	honey := seedIngredient(ingredients, "Honey", 64, 0, 0, 17)
	b := seedBowl(bowls, userID)
	addLine(bowls, b.ID, honey.ID, 1)
	addLine(bowls, b.ID, uuid.New(), 3) // ingredient no longer in the catalog

	service := NewNutritionService(bowls, ingredients)
	res, err := service.Aggregate(context.Background(), b.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(res.Ingredients) != 1 {
		t.Fatalf("got %d lines, want 1 (stale line skipped)", len(res.Ingredients))
	}
	if res.TotalCalories != 64 {
		t.Errorf("total calories = %v, want 64", res.TotalCalories)
	}
}

func TestAggregateRounding(t *testing.T) {
	t.Parallel()

	bowls := newFakeBowlRepository()
	ingredients := newFakeIngredientRepository()
	userID := uuid.New()

	ing := seedIngredient(ingredients, "Nuts", 575, 17.5, 7, 5)
	b := seedBowl(bowls, userID)
	addLine(bowls, b.ID, ing.ID, 0.333)

	service := NewNutritionService(bowls, ingredients)
	res, err := service.Aggregate(context.Background(), b.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// 575 * 0.333 = 191.475, displayed to two decimals.
	if res.Ingredients[0].Calories != 191.48 {
		t.Errorf("line calories = %v, want 191.48", res.Ingredients[0].Calories)
	}
	if res.TotalCalories != 191.48 {
		t.Errorf("total calories = %v, want 191.48", res.TotalCalories)
	}
}

func TestAggregateTagBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		protein  float64
		fiber    float64
		sugar    float64
		wantTags []string
	}{
		{
			name:    "inclusive high thresholds",
			protein: 20.0, fiber: 6.0, sugar: 20.0,
			wantTags: []string{domain.TagHighProtein, domain.TagHighFiber, domain.TagHighSugar},
		},
		{
			name:    "just below high",
			protein: 19.99, fiber: 5.99, sugar: 19.99,
			wantTags: []string{domain.TagModerateProtein, domain.TagModerateFiber, domain.TagModerateSugar},
		},
		{
			name:    "inclusive moderate thresholds",
			protein: 10.0, fiber: 3.0, sugar: 10.0,
			wantTags: []string{domain.TagModerateProtein, domain.TagModerateFiber, domain.TagModerateSugar},
		},
		{
			name:    "below moderate",
			protein: 9.99, fiber: 2.99, sugar: 9.99,
			wantTags: []string{domain.TagLowProtein, domain.TagLowFiber, domain.TagLowSugar},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bowls := newFakeBowlRepository()
			ingredients := newFakeIngredientRepository()
			userID := uuid.New()

			ing := seedIngredient(ingredients, "Custom Mix", 100, tt.protein, tt.fiber, tt.sugar)
			b := seedBowl(bowls, userID)
			addLine(bowls, b.ID, ing.ID, 1)

			service := NewNutritionService(bowls, ingredients)
			res, err := service.Aggregate(context.Background(), b.ID.String(), userID.String())
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			assertTags(t, res.Tags, tt.wantTags)
		})
	}
}

func TestAggregateTagsUseRawTotals(t *testing.T) {
	t.Parallel()

	bowls := newFakeBowlRepository()
	ingredients := newFakeIngredientRepository()
	userID := uuid.New()

	// Three lines of 6.667 protein each: raw total 20.001 crosses the high
	// threshold even though each displayed line rounds to 6.67.
	ing := seedIngredient(ingredients, "Protein Mix", 0, 6.667, 0, 0)
	b := seedBowl(bowls, userID)
	addLine(bowls, b.ID, ing.ID, 3)

	service := NewNutritionService(bowls, ingredients)
	res, err := service.Aggregate(context.Background(), b.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if res.Tags[0] != domain.TagHighProtein {
		t.Errorf("protein tag = %q, want %q", res.Tags[0], domain.TagHighProtein)
	}
}

func assertTags(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tags %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
