package nutrition

import (
	"strings"
)

// unitRule maps an ingredient-name fragment to its display unit. Rules are
// evaluated top to bottom and the first match wins, so "Strawberry Yogurt"
// resolves through the yogurt rule, not the strawberry one.
type unitRule struct {
	match    func(name string) bool
	singular string
	plural   string
}

func contains(fragment string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, fragment)
	}
}

var unitRules = []unitRule{
	{contains("yogurt"), "cup", "cups"},
	{contains("honey"), "tbsp", "tbsp"},
	{contains("peanut"), "tbsp", "tbsp"},
	{contains("nuts"), "cup", "cups"},
	{func(name string) bool {
		return strings.Contains(name, "strawberry") && !strings.Contains(name, "yogurt")
	}, "strawberry", "strawberries"},
	{contains("blueberr"), "cup", "cups"},
	{contains("banana"), "medium banana", "medium bananas"},
}

// UnitFor derives the display unit for an ingredient name and quantity.
// Unmatched names get an empty unit.
func UnitFor(ingredientName string, quantity float64) string {
	name := strings.ToLower(ingredientName)
	for _, rule := range unitRules {
		if rule.match(name) {
			if quantity == 1.0 {
				return rule.singular
			}
			return rule.plural
		}
	}
	return ""
}
