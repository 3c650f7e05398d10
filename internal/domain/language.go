package domain

// LanguageIDs maps supported language names to judge language ids
var LanguageIDs = map[string]int{
	"javascript": 63, // Node.js
	"python":     71, // Python 3
	"java":       62,
}

// SupportedLanguage reports whether language can be submitted
func SupportedLanguage(language string) bool {
	_, ok := LanguageIDs[language]
	return ok
}
