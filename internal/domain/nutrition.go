package domain

import "time"

// Field identifies one structured attribute of a nutrition label
type Field string

// Nutrition fields extracted from label text. The string values double as
// the nutrient names used in concern labels (e.g. "high total_fat").
const (
	FieldServingSize       Field = "serving_size"
	FieldCalories          Field = "calories"
	FieldTotalFat          Field = "total_fat"
	FieldSaturatedFat      Field = "saturated_fat"
	FieldCholesterol       Field = "cholesterol"
	FieldSodium            Field = "sodium"
	FieldTotalCarbohydrate Field = "total_carbohydrate"
	FieldDietaryFiber      Field = "dietary_fiber"
	FieldSugars            Field = "sugars"
	FieldProtein           Field = "protein"
	FieldIngredients       Field = "ingredients"
)

// NutritionRecord holds the raw matched substrings (units included) for each
// field found on a label. A nil field was not detected.
type NutritionRecord struct {
	ServingSize       *string `json:"servingSize"`
	Calories          *string `json:"calories"`
	TotalFat          *string `json:"totalFat"`
	SaturatedFat      *string `json:"saturatedFat"`
	Cholesterol       *string `json:"cholesterol"`
	Sodium            *string `json:"sodium"`
	TotalCarbohydrate *string `json:"totalCarbohydrate"`
	DietaryFiber      *string `json:"dietaryFiber"`
	Sugars            *string `json:"sugars"`
	Protein           *string `json:"protein"`
	Ingredients       *string `json:"ingredients"`
}

// slot returns the storage location for a field, or nil for unknown fields
func (r *NutritionRecord) slot(field Field) **string {
	switch field {
	case FieldServingSize:
		return &r.ServingSize
	case FieldCalories:
		return &r.Calories
	case FieldTotalFat:
		return &r.TotalFat
	case FieldSaturatedFat:
		return &r.SaturatedFat
	case FieldCholesterol:
		return &r.Cholesterol
	case FieldSodium:
		return &r.Sodium
	case FieldTotalCarbohydrate:
		return &r.TotalCarbohydrate
	case FieldDietaryFiber:
		return &r.DietaryFiber
	case FieldSugars:
		return &r.Sugars
	case FieldProtein:
		return &r.Protein
	case FieldIngredients:
		return &r.Ingredients
	}
	return nil
}

// Get returns the value of a field and whether it was detected
func (r *NutritionRecord) Get(field Field) (string, bool) {
	p := r.slot(field)
	if p == nil || *p == nil {
		return "", false
	}
	return **p, true
}

// Set writes a field once. It reports false when the field is unknown or
// already holds a value; existing values are never overwritten.
func (r *NutritionRecord) Set(field Field, value string) bool {
	p := r.slot(field)
	if p == nil || *p != nil {
		return false
	}
	*p = &value
	return true
}

// Has reports whether a field was detected
func (r *NutritionRecord) Has(field Field) bool {
	_, ok := r.Get(field)
	return ok
}

// IsEmpty reports whether no field at all was detected
func (r *NutritionRecord) IsEmpty() bool {
	for _, f := range AllFields {
		if r.Has(f) {
			return false
		}
	}
	return true
}

// AllFields lists every field in label order
var AllFields = []Field{
	FieldServingSize,
	FieldCalories,
	FieldTotalFat,
	FieldSaturatedFat,
	FieldCholesterol,
	FieldSodium,
	FieldTotalCarbohydrate,
	FieldDietaryFiber,
	FieldSugars,
	FieldProtein,
	FieldIngredients,
}

// AnalysisResult is the outcome of running the extraction pipeline over one
// OCR text. It is built once per analysis and not modified afterwards.
type AnalysisResult struct {
	NormalizedText       string          `json:"normalizedText"`
	Record               NutritionRecord `json:"record"`
	Response             string          `json:"response"`
	Allergens            []string        `json:"allergens"`
	Concerns             []string        `json:"concerns"`
	HasNutritionKeywords bool            `json:"hasNutritionKeywords"`
}

// ScanResult wraps an analysis produced from an uploaded label image
type ScanResult struct {
	ImageDigest string          `json:"imageDigest"`
	Analysis    *AnalysisResult `json:"analysis"`
	Provider    string          `json:"provider"`
	Source      string          `json:"source"` // "OCR" or "Cache"
	ScannedAt   time.Time       `json:"scannedAt"`
}

// AnalyzeRequest represents a request to analyze already-extracted label text
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// BatchAnalyzeRequest represents a request to analyze several label texts
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts" binding:"required"`
}

// BatchAnalyzeResponse holds batch results in request order
type BatchAnalyzeResponse struct {
	Results []*AnalysisResult `json:"results"`
}
