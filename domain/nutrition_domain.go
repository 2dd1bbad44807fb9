package domain

var (
	MessageSuccessGetNutrition = "bowl nutrition calculated successfully"
	MessageFailedGetNutrition  = "failed to calculate bowl nutrition"
)

// Tag labels attached to a bowl's totals, one per nutrient.
const (
	TagHighProtein     = "High Protein"
	TagModerateProtein = "Moderate Protein"
	TagLowProtein      = "Low Protein"
	TagHighFiber       = "High Fiber"
	TagModerateFiber   = "Moderate Fiber"
	TagLowFiber        = "Low Fiber"
	TagHighSugar       = "High Sugar"
	TagModerateSugar   = "Moderate Sugar"
	TagLowSugar        = "Low Sugar"
)

type (
	BowlLineNutrition struct {
		IngredientID      string  `json:"ingredient_id"`
		Name              string  `json:"name"`
		Quantity          float64 `json:"quantity"`
		Unit              string  `json:"unit"`
		Calories          float64 `json:"calories"`
		Protein           float64 `json:"protein"`
		Fiber             float64 `json:"fiber"`
		Sugar             float64 `json:"sugar"`
		IconFilename      string  `json:"icon_filename,omitempty"`
		BowlImageFilename string  `json:"bowl_image_filename,omitempty"`
		IsDrizzle         bool    `json:"is_drizzle"`
	}

	BowlNutritionResponse struct {
		Bowl          BowlResponse        `json:"bowl"`
		Ingredients   []BowlLineNutrition `json:"ingredients"`
		TotalCalories float64             `json:"total_calories"`
		TotalProtein  float64             `json:"total_protein"`
		TotalFiber    float64             `json:"total_fiber"`
		TotalSugar    float64             `json:"total_sugar"`
		Tags          []string            `json:"tags"`
	}
)
