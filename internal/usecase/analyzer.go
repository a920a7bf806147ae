package usecase

import (
	"context"
	"log"
	"regexp"

	"github.com/labellens/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// nutritionKeywordPattern detects label vocabulary as whole words
var nutritionKeywordPattern = regexp.MustCompile(`(?i)\b(?:nutrition|serving|calories|fat|protein|carbohydrate|sodium|sugar|vitamin|mineral)\b`)

// defaultBatchConcurrency bounds parallel analyses when no limit is configured
const defaultBatchConcurrency = 8

// HasNutritionKeywords reports whether text looks like it came from a
// nutrition label at all
func HasNutritionKeywords(text string) bool {
	return nutritionKeywordPattern.MatchString(text)
}

// Analyze runs the full extraction pipeline over raw OCR text:
// normalize -> fields + ingredients -> allergens, concerns -> response.
// It is pure and total: every input, including "", produces a result.
func Analyze(rawText string) *domain.AnalysisResult {
	normalized := NormalizeUnits(rawText)

	record := ExtractFields(normalized)
	if ingredients := ExtractIngredients(normalized); ingredients != nil {
		record.Set(domain.FieldIngredients, *ingredients)
	}

	allergens := DetectAllergens(record.Ingredients)
	concerns := EvaluateConcerns(&record)

	return &domain.AnalysisResult{
		NormalizedText:       normalized,
		Record:               record,
		Response:             composeResponse(&record, allergens, concerns),
		Allergens:            allergens,
		Concerns:             concerns,
		HasNutritionKeywords: HasNutritionKeywords(normalized),
	}
}

// Analyzer runs independent analyses, optionally in parallel
type Analyzer struct {
	concurrency        int
	enableDebugLogging bool
}

// NewAnalyzer creates an analyzer that runs at most concurrency analyses at once
func NewAnalyzer(concurrency int, enableDebugLogging bool) *Analyzer {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &Analyzer{
		concurrency:        concurrency,
		enableDebugLogging: enableDebugLogging,
	}
}

// Analyze analyzes a single label text
func (a *Analyzer) Analyze(rawText string) *domain.AnalysisResult {
	result := Analyze(rawText)
	if a.enableDebugLogging {
		log.Printf("[ANALYZE] chars=%d keywords=%v allergens=%v concerns=%v",
			len(rawText), result.HasNutritionKeywords, result.Allergens, result.Concerns)
	}
	return result
}

// AnalyzeBatch analyzes every text in parallel. Results keep input order.
// The only error is context cancellation; analysis itself cannot fail.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) ([]*domain.AnalysisResult, error) {
	results := make([]*domain.AnalysisResult, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = a.Analyze(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
