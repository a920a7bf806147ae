package usecase

import (
	"regexp"
	"testing"

	"github.com/labellens/backend/internal/domain"
)

func TestExtractFields(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want map[domain.Field]string
	}{
		{
			name: "single line label",
			text: "Serving Size 12 oz Calories 250 Total Fat 5g Sodium 100mg Ingredients: Water, Sugar, Milk. Contains: Milk.",
			want: map[domain.Field]string{
				domain.FieldServingSize: "12 oz",
				domain.FieldCalories:    "250",
				domain.FieldTotalFat:    "5g",
				domain.FieldSodium:      "100mg",
			},
		},
		{
			name: "full panel",
			text: "Nutrition Facts\nServing Size 1 cup (240mL) Amount Per Serving\nCalories 120\n" +
				"Total Fat 2.5g\nSaturated Fat 1.5g\nCholesterol 10mg\nSodium 125mg\n" +
				"Total Carbohydrate 12g\nDietary Fiber 0g\nSugars 12g\nProtein 8g",
			want: map[domain.Field]string{
				domain.FieldServingSize:       "1 cup (240mL)",
				domain.FieldCalories:          "120",
				domain.FieldTotalFat:          "2.5g",
				domain.FieldSaturatedFat:      "1.5g",
				domain.FieldCholesterol:       "10mg",
				domain.FieldSodium:            "125mg",
				domain.FieldTotalCarbohydrate: "12g",
				domain.FieldDietaryFiber:      "0g",
				domain.FieldSugars:            "12g",
				domain.FieldProtein:           "8g",
			},
		},
		{
			name: "qualifier words are optional",
			text: "Carbohydrate 31 g Fiber 4%",
			want: map[domain.Field]string{
				domain.FieldTotalCarbohydrate: "31 g",
				domain.FieldDietaryFiber:      "4%",
			},
		},
		{
			name: "serving size falls back to number and unit",
			text: "Serving Size: 2 cookies. Per container 8",
			want: map[domain.Field]string{
				domain.FieldServingSize: "2 cookies",
			},
		},
		{
			name: "empty serving capture falls through",
			text: "Serving Size Calories 100",
			want: map[domain.Field]string{
				domain.FieldCalories: "100",
			},
		},
		{
			name: "energy in kcal",
			text: "Energy 200 kcal",
			want: map[domain.Field]string{
				domain.FieldCalories: "200",
			},
		},
		{
			name: "first occurrence wins",
			text: "Sodium 100mg Sodium 900mg",
			want: map[domain.Field]string{
				domain.FieldSodium: "100mg",
			},
		},
		{
			name: "case-insensitive labels",
			text: "TOTAL FAT 9g PROTEIN 3g",
			want: map[domain.Field]string{
				domain.FieldTotalFat: "9g",
				domain.FieldProtein:  "3g",
			},
		},
		{
			name: "no label text",
			text: "hello world",
			want: map[domain.Field]string{},
		},
		{
			name: "empty text",
			text: "",
			want: map[domain.Field]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := ExtractFields(tc.text)

			for _, field := range domain.AllFields {
				got, ok := record.Get(field)
				want, wantOK := tc.want[field]
				if ok != wantOK {
					t.Errorf("%s present = %v, want %v (value %q)", field, ok, wantOK, got)
					continue
				}
				if got != want {
					t.Errorf("%s = %q, want %q", field, got, want)
				}
			}
		})
	}
}

func TestExtractFields_NeverSetsIngredients(t *testing.T) {
	record := ExtractFields("Ingredients: flour, water, salt, yeast")
	if record.Has(domain.FieldIngredients) {
		t.Errorf("ingredients = %q, want unset", *record.Ingredients)
	}
}

func TestPatternRuleMatch(t *testing.T) {
	t.Run("skips blank captures", func(t *testing.T) {
		rule := PatternRule{
			Field: domain.FieldServingSize,
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`Size(\s*)`),
				regexp.MustCompile(`Size\s*(\d+)`),
			},
		}

		got, ok := rule.Match("Size 3")
		if !ok || got != "3" {
			t.Errorf("Match() = %q, %v, want 3, true", got, ok)
		}
	})

	t.Run("no pattern matches", func(t *testing.T) {
		rule := nutrientRule(domain.FieldSodium, `Sodium\s*(\d+\s*mg)`)

		if got, ok := rule.Match("Protein 4g"); ok {
			t.Errorf("Match() = %q, true, want no match", got)
		}
	})
}

func TestValueGroup(t *testing.T) {
	testCases := []struct {
		field  domain.Field
		groups int
		want   int
	}{
		{domain.FieldServingSize, 2, 1},
		{domain.FieldCalories, 1, 1},
		{domain.FieldSodium, 1, 1},
		{domain.FieldTotalCarbohydrate, 2, 2},
		{domain.FieldDietaryFiber, 2, 2},
	}

	for _, tc := range testCases {
		t.Run(string(tc.field), func(t *testing.T) {
			if got := valueGroup(tc.field, tc.groups); got != tc.want {
				t.Errorf("valueGroup(%s, %d) = %d, want %d", tc.field, tc.groups, got, tc.want)
			}
		})
	}
}
