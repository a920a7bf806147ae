package usecase

import "testing"

func TestExtractIngredients(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want *string
	}{
		{
			name: "stops at contains statement",
			text: "Serving Size 12 oz Calories 250 Ingredients: Water, Sugar, Milk. Contains: Milk.",
			want: strPtr("Water, Sugar, Milk."),
		},
		{
			name: "upper-case header and blank line",
			text: "INGREDIENTS: Enriched flour, sugar, salt\n\nDistributed by Acme Foods",
			want: strPtr("Enriched flour, sugar, salt"),
		},
		{
			name: "header followed by newline",
			text: "Ingredients\nWheat flour, water, yeast",
			want: strPtr("Wheat flour, water, yeast"),
		},
		{
			name: "terminators are case-insensitive",
			text: "Ingredients: oats, honey, almonds. CONTAINS: ALMONDS",
			want: strPtr("oats, honey, almonds."),
		},
		{
			name: "stops at nutrition panel",
			text: "Ingredients: rice, salt, Nutrition Facts Calories 100",
			want: strPtr("rice, salt,"),
		},
		{
			name: "spans lines until a terminator",
			text: "Ingredients: corn, sunflower oil,\nsea salt. Keep refrigerated after opening",
			want: strPtr("corn, sunflower oil,\nsea salt."),
		},
		{
			name: "ten characters is too short",
			text: "Ingredients: abcdefghij",
			want: nil,
		},
		{
			name: "eleven characters is kept",
			text: "Ingredients: abcdefghijk",
			want: strPtr("abcdefghijk"),
		},
		{
			name: "short list is noise",
			text: "Ingredients: Salt.",
			want: nil,
		},
		{
			name: "terminator right after header",
			text: "Ingredients: Contains milk and wheat",
			want: nil,
		},
		{
			name: "no header",
			text: "Calories 120 Total Fat 3g",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIngredients(tc.text)
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("ExtractIngredients() = %q, want nil", *got)
			case tc.want != nil && got == nil:
				t.Errorf("ExtractIngredients() = nil, want %q", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Errorf("ExtractIngredients() = %q, want %q", *got, *tc.want)
			}
		})
	}
}

func TestTruncateAtTerminators(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		want      string
	}{
		{"no marker", "flour, sugar", "flour, sugar"},
		{"single marker", "flour % Daily Value 3%", "flour "},
		{"earliest marker wins", "flour Total Fat 2g Allergen info", "flour "},
		{"literal dot in marker", "flour Dist. by Acme", "flour "},
		{"dot is not a wildcard", "flour Distx by Acme", "flour Distx by Acme"},
		{"currency marker", "water HI 5¢ refund", "water "},
		{"markers apply in list order", "salt Amount per serving size 1", "salt Amount per "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateAtTerminators(tc.candidate); got != tc.want {
				t.Errorf("truncateAtTerminators(%q) = %q, want %q", tc.candidate, got, tc.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
