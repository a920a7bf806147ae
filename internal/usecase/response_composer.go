package usecase

import (
	"fmt"
	"strings"

	"github.com/labellens/backend/internal/domain"
)

// LowConfidenceResponse is returned when none of the load-bearing fields
// were extracted from the label
const LowConfidenceResponse = "Sorry, I couldn't detect clear nutrition information from the image. Please try a clearer photo of the nutrition label."

const (
	noAllergensSentence = "No common allergens detected in the ingredients. "
	quantityQuestion    = "How much did you eat (whole package, half can, etc.)?"
)

// loadBearingFields decide whether an extraction produced usable data
var loadBearingFields = []domain.Field{
	domain.FieldServingSize,
	domain.FieldCalories,
	domain.FieldTotalFat,
	domain.FieldSodium,
}

// ComposeResponse builds the advisory message for an extracted record.
// Sentences are emitted in a fixed order: allergens, concerns, serving size,
// calories, then the quantity question.
func ComposeResponse(record *domain.NutritionRecord, normalizedText string) string {
	allergens := DetectAllergens(record.Ingredients)
	concerns := EvaluateConcerns(record)
	return composeResponse(record, allergens, concerns)
}

func composeResponse(record *domain.NutritionRecord, allergens, concerns []string) string {
	if !hasLoadBearingField(record) {
		return LowConfidenceResponse
	}

	var b strings.Builder

	if len(allergens) > 0 {
		fmt.Fprintf(&b, "Alert: This product contains potential allergens (%s). ", strings.Join(allergens, ", "))
	} else {
		b.WriteString(noAllergensSentence)
	}

	if len(concerns) > 0 {
		fmt.Fprintf(&b, "Nutritional note: %s. ", strings.ToLower(strings.Join(concerns, ", ")))
	}

	if servingSize, ok := record.Get(domain.FieldServingSize); ok {
		fmt.Fprintf(&b, "Serving size is %s. ", servingSize)
	}

	if calories, ok := record.Get(domain.FieldCalories); ok {
		fmt.Fprintf(&b, "Calories per serving: %s. ", calories)
	}

	b.WriteString(quantityQuestion)
	return b.String()
}

func hasLoadBearingField(record *domain.NutritionRecord) bool {
	for _, f := range loadBearingFields {
		if record.Has(f) {
			return true
		}
	}
	return false
}
