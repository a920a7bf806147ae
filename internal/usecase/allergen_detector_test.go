package usecase

import (
	"reflect"
	"strings"
	"testing"
)

func TestDetectAllergens(t *testing.T) {
	testCases := []struct {
		name        string
		ingredients *string
		want        []string
	}{
		{
			name:        "absent ingredients",
			ingredients: nil,
			want:        []string{},
		},
		{
			name:        "single allergen",
			ingredients: strPtr("Water, Sugar, Milk."),
			want:        []string{"milk"},
		},
		{
			name:        "several keywords collapse to one category",
			ingredients: strPtr("whey protein, casein, milk, dairy cream"),
			want:        []string{"milk"},
		},
		{
			name:        "output follows category table order",
			ingredients: strPtr("soy lecithin, wheat flour, peanuts, milk"),
			want:        []string{"milk", "peanuts", "soy", "wheat/gluten"},
		},
		{
			name:        "may contain clause",
			ingredients: strPtr("sugar, cocoa butter. May contain Tree Nuts."),
			want:        []string{"tree nuts"},
		},
		{
			name:        "case-insensitive",
			ingredients: strPtr("EGGS, ALMONDS, SESAME"),
			want:        []string{"eggs", "tree nuts", "sesame"},
		},
		{
			name:        "whole words only",
			ingredients: strPtr("eggplant, buttermilk, shellfishy flavor"),
			want:        []string{},
		},
		{
			name:        "fish and shellfish stay separate",
			ingredients: strPtr("fish sauce, shrimp paste"),
			want:        []string{"fish", "shellfish"},
		},
		{
			name:        "tail of the table",
			ingredients: strPtr("sesame oil, mustard seed, sodium sulfite"),
			want:        []string{"sulfites", "sesame", "mustard"},
		},
		{
			name:        "nothing detected",
			ingredients: strPtr("water, sugar, citric acid"),
			want:        []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectAllergens(tc.ingredients)
			if got == nil {
				t.Fatal("DetectAllergens() = nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("DetectAllergens() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAllergenTables(t *testing.T) {
	t.Run("every keyword maps to its group", func(t *testing.T) {
		for _, group := range allergenGroups {
			for _, kw := range group.Keywords {
				if keywordToCategory[kw] != group.Category {
					t.Errorf("keyword %q maps to %q, want %q", kw, keywordToCategory[kw], group.Category)
				}
			}
		}
	})

	t.Run("keywords are lower-case", func(t *testing.T) {
		for _, kw := range allergenKeywords {
			if kw.keyword != strings.ToLower(kw.keyword) {
				t.Errorf("keyword %q is not lower-case", kw.keyword)
			}
		}
	})
}
