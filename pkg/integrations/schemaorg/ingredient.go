package schemaorg

import (
	"regexp"
	"strconv"
	"strings"

	"go.openly.dev/pointy"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
)

// countUnit is used when an ingredient line names no unit, e.g. "3 eggs".
const countUnit = "pc"

var quantityPattern = regexp.MustCompile(`^\s*(\d+\s+\d+/\d+|\d+/\d+|\d+(?:[.,]\d+)?)\s*(.*)$`)

var unitAliases = map[string]string{
	"g": "g", "gr": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"ml": "ml", "millilitre": "ml", "millilitres": "ml", "milliliter": "ml", "milliliters": "ml",
	"l": "l", "litre": "l", "litres": "l", "liter": "l", "liters": "l",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"cup": "cup", "cups": "cup",
	"pinch": "pinch", "pinches": "pinch",
	"pc": "pc", "pcs": "pc", "piece": "pc", "pieces": "pc",
}

// ParseIngredient reads a free-text line such as "500 g plain flour, sifted" into an ingredient
// line. Lines without a leading quantity ("salt to taste") are not understood.
func ParseIngredient(text string) (recipes.IngredientLine, bool) {
	match := quantityPattern.FindStringSubmatch(text)
	if match == nil {
		return recipes.IngredientLine{}, false
	}

	quantity, ok := parseQuantity(match[1])
	if !ok || quantity <= 0 {
		return recipes.IngredientLine{}, false
	}

	unit, name := countUnit, match[2]

	if word, rest, _ := strings.Cut(match[2], " "); word != "" {
		if canonical, known := unitAliases[strings.TrimSuffix(strings.ToLower(word), ".")]; known {
			unit, name = canonical, rest
		}
	}

	name, _, _ = strings.Cut(name, ",")
	name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "of "))

	if !identity.Valid(name) {
		return recipes.IngredientLine{}, false
	}

	return recipes.IngredientLine{
		Name:          pointy.String(name),
		UnitOfMeasure: pointy.String(unit),
		Quantity:      pointy.Float64(quantity),
	}, true
}

func parseQuantity(text string) (float64, bool) {
	text = strings.ReplaceAll(text, ",", ".")

	whole := 0.0

	if parts := strings.Fields(text); len(parts) == 2 { //nolint:mnd // whole number and fraction
		value, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, false
		}

		whole, text = value, parts[1]
	}

	if numerator, denominator, isFraction := strings.Cut(text, "/"); isFraction {
		n, errN := strconv.ParseFloat(numerator, 64)
		d, errD := strconv.ParseFloat(denominator, 64)

		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}

		return whole + n/d, true
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	return whole + value, true
}
