package vision

// Feature types understood by the images:annotate endpoint
const (
	FeatureTextDetection         = "TEXT_DETECTION"
	FeatureDocumentTextDetection = "DOCUMENT_TEXT_DETECTION"
)

// AnnotateRequest is the body of a batch images:annotate call
type AnnotateRequest struct {
	Requests []AnnotateImageRequest `json:"requests"`
}

// AnnotateImageRequest asks for a set of features on one image
type AnnotateImageRequest struct {
	Image        Image         `json:"image"`
	Features     []Feature     `json:"features"`
	ImageContext *ImageContext `json:"imageContext,omitempty"`
}

// Image carries base64-encoded image bytes
type Image struct {
	Content string `json:"content"`
}

// Feature selects a detection type
type Feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// ImageContext passes language hints to text detection
type ImageContext struct {
	LanguageHints []string `json:"languageHints,omitempty"`
}

// AnnotateResponse is the body returned by images:annotate
type AnnotateResponse struct {
	Responses []AnnotateImageResponse `json:"responses"`
}

// AnnotateImageResponse holds the detections for one image.
// TextAnnotations[0] carries the full text; later entries are single words.
type AnnotateImageResponse struct {
	TextAnnotations    []EntityAnnotation `json:"textAnnotations,omitempty"`
	FullTextAnnotation *TextAnnotation    `json:"fullTextAnnotation,omitempty"`
	Error              *Status            `json:"error,omitempty"`
}

// EntityAnnotation is one detected text entity
type EntityAnnotation struct {
	Locale      string `json:"locale,omitempty"`
	Description string `json:"description"`
}

// TextAnnotation is the structured full-text result
type TextAnnotation struct {
	Text string `json:"text"`
}

// Status is a per-image error reported inside a 200 response
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
