package vision

import (
	"errors"
	"testing"

	"github.com/labellens/backend/internal/domain"
)

func TestMapToText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *AnnotateResponse
		want    string
		wantErr error
	}{
		{
			name: "uses first text annotation",
			resp: &AnnotateResponse{Responses: []AnnotateImageResponse{{
				TextAnnotations: []EntityAnnotation{
					{Description: "Total Fat 5g\nSodium 100mg"},
					{Description: "Total"},
				},
				FullTextAnnotation: &TextAnnotation{Text: "ignored"},
			}}},
			want: "Total Fat 5g\nSodium 100mg",
		},
		{
			name: "falls back to full text annotation",
			resp: &AnnotateResponse{Responses: []AnnotateImageResponse{{
				FullTextAnnotation: &TextAnnotation{Text: "Calories 120"},
			}}},
			want: "Calories 120",
		},
		{
			name: "blank annotation falls back",
			resp: &AnnotateResponse{Responses: []AnnotateImageResponse{{
				TextAnnotations:    []EntityAnnotation{{Description: "  \n"}},
				FullTextAnnotation: &TextAnnotation{Text: "Protein 4g"},
			}}},
			want: "Protein 4g",
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: domain.ErrNoTextDetected,
		},
		{
			name:    "no responses",
			resp:    &AnnotateResponse{},
			wantErr: domain.ErrNoTextDetected,
		},
		{
			name:    "empty annotations",
			resp:    &AnnotateResponse{Responses: []AnnotateImageResponse{{}}},
			wantErr: domain.ErrNoTextDetected,
		},
		{
			name: "per-image error",
			resp: &AnnotateResponse{Responses: []AnnotateImageResponse{{
				Error: &Status{Code: 7, Message: "permission denied"},
			}}},
			wantErr: domain.ErrOCRFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapToText(tt.resp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("MapToText() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MapToText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MapToText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectedLocale(t *testing.T) {
	resp := &AnnotateResponse{Responses: []AnnotateImageResponse{{
		TextAnnotations: []EntityAnnotation{{Locale: "en", Description: "Sugars 12g"}},
	}}}
	if got := DetectedLocale(resp); got != "en" {
		t.Errorf("DetectedLocale() = %q, want en", got)
	}
	if got := DetectedLocale(nil); got != "" {
		t.Errorf("DetectedLocale(nil) = %q, want empty", got)
	}
}
