package usecase

import (
	"regexp"
	"strconv"

	"github.com/labellens/backend/internal/domain"
)

// ConcernThreshold flags a nutrient whose per-serving value exceeds Limit.
// Values are compared as extracted; no unit conversion happens.
type ConcernThreshold struct {
	Field domain.Field
	Limit float64
	Unit  string
}

// concernThresholds are checked in this order
var concernThresholds = []ConcernThreshold{
	{Field: domain.FieldSodium, Limit: 500, Unit: "mg"},
	{Field: domain.FieldSugars, Limit: 20, Unit: "g"},
	{Field: domain.FieldTotalFat, Limit: 15, Unit: "g"},
}

var leadingNumberPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// EvaluateConcerns returns a "high <nutrient>" label for each monitored
// nutrient above its threshold. Fields that are absent or carry no number
// are skipped.
func EvaluateConcerns(record *domain.NutritionRecord) []string {
	concerns := []string{}
	for _, threshold := range concernThresholds {
		raw, ok := record.Get(threshold.Field)
		if !ok {
			continue
		}
		value, ok := parseLeadingNumber(raw)
		if !ok {
			continue
		}
		if value > threshold.Limit {
			concerns = append(concerns, "high "+string(threshold.Field))
		}
	}
	return concerns
}

// parseLeadingNumber extracts the first decimal number in a field value
func parseLeadingNumber(s string) (float64, bool) {
	m := leadingNumberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
