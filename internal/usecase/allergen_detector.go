package usecase

import (
	"regexp"
	"strings"
)

// AllergenGroup maps a canonical allergen category to its surface keywords
type AllergenGroup struct {
	Category string
	Keywords []string
}

// allergenGroups is the category table. Output follows this order.
var allergenGroups = []AllergenGroup{
	{Category: "milk", Keywords: []string{"milk", "dairy", "lactose", "whey", "casein"}},
	{Category: "eggs", Keywords: []string{"egg", "eggs"}},
	{Category: "peanuts", Keywords: []string{"peanut", "peanuts"}},
	{Category: "tree nuts", Keywords: []string{
		"tree nut", "tree nuts", "almond", "almonds", "walnut", "walnuts",
		"cashew", "cashews", "pistachio", "pistachios",
		"hazelnut", "hazelnuts", "pecan", "pecans",
	}},
	{Category: "soy", Keywords: []string{"soy", "soya", "tofu", "edamame"}},
	{Category: "wheat/gluten", Keywords: []string{"wheat", "gluten", "barley", "rye", "spelt", "triticale"}},
	{Category: "fish", Keywords: []string{"fish"}},
	{Category: "shellfish", Keywords: []string{"shellfish", "crustacean", "crustaceans", "shrimp", "crab", "lobster"}},
	{Category: "sulfites", Keywords: []string{"sulfite", "sulfites"}},
	{Category: "sesame", Keywords: []string{"sesame"}},
	{Category: "mustard", Keywords: []string{"mustard"}},
}

// allergenKeyword is a compiled whole-word matcher for one surface keyword
type allergenKeyword struct {
	keyword string
	pattern *regexp.Regexp
}

// Built once from allergenGroups
var (
	allergenKeywords  = compileAllergenKeywords(allergenGroups)
	keywordToCategory = buildKeywordIndex(allergenGroups)
)

// mayContainPattern captures a "may contain" clause up to the next period
var mayContainPattern = regexp.MustCompile(`(?i)may\s+contain\s+([^\.]*)`)

func compileAllergenKeywords(groups []AllergenGroup) []allergenKeyword {
	var keywords []allergenKeyword
	for _, g := range groups {
		for _, kw := range g.Keywords {
			keywords = append(keywords, allergenKeyword{
				keyword: kw,
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
	}
	return keywords
}

func buildKeywordIndex(groups []AllergenGroup) map[string]string {
	index := make(map[string]string)
	for _, g := range groups {
		for _, kw := range g.Keywords {
			index[kw] = g.Category
		}
	}
	return index
}

// DetectAllergens returns the allergen categories named in an ingredient
// list, including any "may contain" clause. Each category appears at most
// once, in category table order. A nil list yields no categories.
func DetectAllergens(ingredients *string) []string {
	if ingredients == nil {
		return []string{}
	}
	text := strings.ToLower(*ingredients)

	found := matchKeywords(text)
	if m := mayContainPattern.FindStringSubmatch(text); m != nil {
		found = append(found, matchKeywords(m[1])...)
	}

	hit := make(map[string]bool)
	for _, kw := range found {
		if category, ok := keywordToCategory[kw]; ok {
			hit[category] = true
		}
	}

	categories := make([]string, 0, len(hit))
	for _, g := range allergenGroups {
		if hit[g.Category] {
			categories = append(categories, g.Category)
		}
	}
	return categories
}

// matchKeywords returns every keyword with a whole-word match in lower-cased text
func matchKeywords(text string) []string {
	var matched []string
	for _, kw := range allergenKeywords {
		if kw.pattern.MatchString(text) {
			matched = append(matched, kw.keyword)
		}
	}
	return matched
}
