package fontcss

// formatKeywords is the closed extension→format mapping. Matching is
// case-sensitive: "TTF" is not a recognized extension. Adding a future
// format (e.g. a variable-font collection) is a data change here, not a
// logic change anywhere else.
var formatKeywords = map[string]string{
	"ttf":   "truetype",
	"otf":   "opentype",
	"woff":  "woff",
	"woff2": "woff2",
}

// FormatKeyword maps a file extension (without the leading dot) to its
// stylesheet format keyword. The second return is false for extensions
// outside the recognized set.
func FormatKeyword(ext string) (string, bool) {
	keyword, ok := formatKeywords[ext]
	return keyword, ok
}

// RecognizedExtensions returns the extensions the generator processes,
// in stable lexical order.
func RecognizedExtensions() []string {
	return []string{"otf", "ttf", "woff", "woff2"}
}

// extensionForKeyword is the reverse lookup used by the linter to verify
// that a rule's format keyword agrees with its url target.
func extensionForKeyword(keyword string) (string, bool) {
	for ext, kw := range formatKeywords {
		if kw == keyword {
			return ext, true
		}
	}
	return "", false
}
