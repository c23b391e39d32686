package normalize

var categoryVocabulary = newVocabulary(
	[]string{CategoryChildren, CategoryEnvironment, CategoryEducation, CategoryAnimal, CategoryHealth, CategoryOthers},
	map[string]string{
		CategoryChildren:    "아동",
		CategoryEnvironment: "환경",
		CategoryEducation:   "교육",
		CategoryAnimal:      "동물",
		CategoryHealth:      "보건",
		CategoryOthers:      "기타",
	},
	map[string]string{
		"child":      CategoryChildren,
		"kids":       CategoryChildren,
		"env":        CategoryEnvironment,
		"edu":        CategoryEducation,
		"animals":    CategoryAnimal,
		"medical":    CategoryHealth,
		"healthcare": CategoryHealth,
		"other":      CategoryOthers,
	},
	map[string]string{
		"아동복지": CategoryChildren,
		"의료":   CategoryHealth,
	},
	map[string]string{
		"nature": CategoryEnvironment,
		"pet":    CategoryAnimal,
		"etc":    CategoryOthers,
		"misc":   CategoryOthers,
	},
	CategoryOthers,
)

// Category resolves a raw category value. Unknown text is kept as both code
// and label; empty input becomes "others".
func Category(raw string) Pair {
	return categoryVocabulary.resolve(raw)
}

// IsCategory reports whether code is one of the canonical category codes.
func IsCategory(code string) bool {
	return categoryVocabulary.known(code)
}

// CategoryCodes returns the canonical category codes in display order.
func CategoryCodes() []string {
	return append([]string(nil), categoryVocabulary.order...)
}
