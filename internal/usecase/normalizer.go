package usecase

import "regexp"

// unitRule rewrites a number followed by a garbled unit token
type unitRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// unitRules fix common OCR unit misreads. Order matters: each rule runs on
// the output of the previous one.
var unitRules = []unitRule{
	{regexp.MustCompile(`(?i)\b(\d+)\s*m9\b`), "${1} mg"},  // "m9" -> "mg"
	{regexp.MustCompile(`(?i)\b(\d+)\s*9\b`), "${1} g"},    // trailing "9" -> "g"
	{regexp.MustCompile(`(?i)\b(\d+)\s*ozz\b`), "${1} oz"}, // "ozz" -> "oz"
	{regexp.MustCompile(`(?i)\b(\d+)\s*cal\b`), "${1} Cal"},
}

// NormalizeUnits rewrites known OCR unit misreads in raw label text.
// Text that matches no rule passes through unchanged.
func NormalizeUnits(text string) string {
	for _, rule := range unitRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
