package usecase

import (
	"reflect"
	"testing"

	"github.com/labellens/backend/internal/domain"
)

func recordWith(values map[domain.Field]string) *domain.NutritionRecord {
	var record domain.NutritionRecord
	for field, value := range values {
		record.Set(field, value)
	}
	return &record
}

func TestEvaluateConcerns(t *testing.T) {
	testCases := []struct {
		name   string
		values map[domain.Field]string
		want   []string
	}{
		{
			name:   "empty record",
			values: nil,
			want:   []string{},
		},
		{
			name:   "high sodium",
			values: map[domain.Field]string{domain.FieldSodium: "600mg"},
			want:   []string{"high sodium"},
		},
		{
			name:   "threshold itself is not high",
			values: map[domain.Field]string{domain.FieldSodium: "500mg", domain.FieldSugars: "20g", domain.FieldTotalFat: "15g"},
			want:   []string{},
		},
		{
			name:   "decimal values",
			values: map[domain.Field]string{domain.FieldTotalFat: "15.5g", domain.FieldSugars: "20.1 g"},
			want:   []string{"high sugars", "high total_fat"},
		},
		{
			name: "fixed order",
			values: map[domain.Field]string{
				domain.FieldTotalFat: "30g",
				domain.FieldSugars:   "45g",
				domain.FieldSodium:   "1200mg",
			},
			want: []string{"high sodium", "high sugars", "high total_fat"},
		},
		{
			name:   "unparseable value is skipped",
			values: map[domain.Field]string{domain.FieldSodium: "n/a", domain.FieldSugars: "25g"},
			want:   []string{"high sugars"},
		},
		{
			name:   "unmonitored nutrients are ignored",
			values: map[domain.Field]string{domain.FieldCholesterol: "900mg", domain.FieldProtein: "80g"},
			want:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateConcerns(recordWith(tc.values))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("EvaluateConcerns() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseLeadingNumber(t *testing.T) {
	testCases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"600mg", 600, true},
		{"2.5 g", 2.5, true},
		{"less than 1g", 1, true},
		{"0g", 0, true},
		{"", 0, false},
		{"trace", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseLeadingNumber(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("parseLeadingNumber(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
