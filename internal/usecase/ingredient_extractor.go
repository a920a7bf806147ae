package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minIngredientsLength is the rune count a trimmed ingredient list must
// exceed to be kept. Shorter captures are OCR noise.
const minIngredientsLength = 10

// ingredientsHeaderPattern captures everything after the first ingredients header
var ingredientsHeaderPattern = regexp.MustCompile(`(?is)(?:Ingredients|INGREDIENTS|INGREDIENT|ingredient)[:\s](.*)`)

// ingredientTerminators mark the end of an ingredient list, checked in order
var ingredientTerminators = []string{
	"\n\n",
	"Nutrition Facts",
	"Nutritional",
	"Allergen",
	"Contains",
	"Storage",
	"Best before",
	"Dist.",
	"KEEP REFRIGERATED",
	"how2recycle.info",
	"PLASTIC",
	"BOTTLE",
	"CA CRV",
	"CTRV",
	"HI 5¢",
	"ME 5¢",
	"% Daily Value",
	"Serving size",
	"Amount per serving",
	"Calories",
	"Total Fat",
	"Cholesterol",
}

// terminatorPatterns are case-insensitive literal matchers for ingredientTerminators
var terminatorPatterns = compileTerminators(ingredientTerminators)

func compileTerminators(markers []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(markers))
	for i, marker := range markers {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(marker))
	}
	return patterns
}

// ExtractIngredients locates the ingredient list in normalized label text.
// Returns nil when there is no ingredients header or the trimmed list is too
// short to be meaningful.
func ExtractIngredients(text string) *string {
	m := ingredientsHeaderPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	candidate := truncateAtTerminators(strings.TrimSpace(m[1]))
	candidate = strings.TrimSpace(candidate)

	if utf8.RuneCountInString(candidate) <= minIngredientsLength {
		return nil
	}
	return &candidate
}

// truncateAtTerminators folds over the terminator list, cutting the current
// candidate at the first occurrence of each marker. Every search runs on the
// already shortened candidate.
func truncateAtTerminators(candidate string) string {
	for _, pattern := range terminatorPatterns {
		if loc := pattern.FindStringIndex(candidate); loc != nil {
			candidate = candidate[:loc[0]]
		}
	}
	return candidate
}
