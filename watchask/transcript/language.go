package transcript

import "strings"

// DefaultLanguages is the caption language preference chain tried in order.
var DefaultLanguages = []string{"en", "en-US", "lv", "es", "ru"}

// LanguageName maps a BCP-47-ish caption language code to the prompt language
// name understood by the question generator. Anything unrecognized is English.
func LanguageName(code string) string {
	c := strings.ToLower(code)
	switch {
	case strings.HasPrefix(c, "lv"):
		return "Latvian"
	case strings.HasPrefix(c, "es"):
		return "Spanish"
	case strings.HasPrefix(c, "ru"):
		return "Russian"
	}
	return "English"
}
