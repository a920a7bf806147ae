package usecase

import (
	"regexp"
	"strings"

	"github.com/labellens/backend/internal/domain"
)

// PatternRule maps a nutrition field to its patterns in priority order.
// The first pattern that yields a non-empty value wins.
type PatternRule struct {
	Field    domain.Field
	Patterns []*regexp.Regexp
}

// fieldRules are evaluated independently; no field gates another
var fieldRules = []PatternRule{
	{
		Field: domain.FieldServingSize,
		Patterns: []*regexp.Regexp{
			// text up to the next section keyword
			regexp.MustCompile(`(?i)Serving\s+Size[:\s]*([^\.]*?)(Serving|Amount|Calories|Per)`),
			regexp.MustCompile(`(?i)Serving\s+Size[:\s]*([0-9]+\s*[a-zA-Z]*)`),
			regexp.MustCompile(`(?i)Serving[:\s]*([0-9]+\s*[a-zA-Z]*)`),
		},
	},
	{
		Field: domain.FieldCalories,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Calories\s+(\d+)`),
			regexp.MustCompile(`(?i)Energy\s+(\d+)\s*kcal`),
			regexp.MustCompile(`(?i)Cal[:\s]*(\d+)`),
		},
	},
	nutrientRule(domain.FieldTotalFat, `(?i)Total\s+Fat\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
	nutrientRule(domain.FieldSaturatedFat, `(?i)Saturated\s+Fat\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
	nutrientRule(domain.FieldCholesterol, `(?i)Cholesterol\s*[:\s]*\s*(\d+\s*mg)`),
	nutrientRule(domain.FieldSodium, `(?i)Sodium\s*[:\s]*\s*(\d+\s*mg)`),
	nutrientRule(domain.FieldTotalCarbohydrate, `(?i)(Total\s+)?Carbohydrate\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
	nutrientRule(domain.FieldDietaryFiber, `(?i)(Dietary\s+)?Fiber\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
	nutrientRule(domain.FieldSugars, `(?i)Sugars\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
	nutrientRule(domain.FieldProtein, `(?i)Protein\s*[:\s]*\s*(\d+\.?\d*\s*[g%])`),
}

// nutrientRule builds a single-pattern rule for a per-nutrient field
func nutrientRule(field domain.Field, pattern string) PatternRule {
	return PatternRule{Field: field, Patterns: []*regexp.Regexp{regexp.MustCompile(pattern)}}
}

// Match returns the value captured by the first pattern that matches.
// Serving size and calories take group 1; nutrient patterns with an optional
// qualifier group take their last group, which holds the value.
func (r PatternRule) Match(text string) (string, bool) {
	for _, pattern := range r.Patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[valueGroup(r.Field, len(m)-1)])
		if value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

// valueGroup picks the capturing group holding the value. The serving size
// pattern has a trailing keyword group, so it always reads group 1.
func valueGroup(field domain.Field, groups int) int {
	if field == domain.FieldServingSize || field == domain.FieldCalories || groups == 1 {
		return 1
	}
	return groups
}

// ExtractFields applies every field rule to normalized label text.
// Fields without a match stay nil; that is not an error.
func ExtractFields(text string) domain.NutritionRecord {
	var record domain.NutritionRecord
	for _, rule := range fieldRules {
		if value, ok := rule.Match(text); ok {
			record.Set(rule.Field, value)
		}
	}
	return record
}
