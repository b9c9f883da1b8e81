package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func CaseParser(s string) []string {
	if s == "" {
		return []string{}
	}

	var segments []string
	var current strings.Builder

	for i, r := range s {
		if i == 0 {
			current.WriteRune(unicode.ToLower(r))
			continue
		}

		// * split on uppercase letters or underscores
		if unicode.IsUpper(r) || r == '_' {
			// * add current segment if not empty
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
			// * skip underscores
			if r != '_' {
				current.WriteRune(unicode.ToLower(r))
			}
		} else {
			current.WriteRune(r)
		}
	}

	// * add last segment
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// ToKebabCase inserts a hyphen before every uppercase rune except a
// leading one, then lowercases the whole result. Multi-word inputs are
// deliberately not split further; only uppercase boundaries count.
func ToKebabCase(s string) string {
	if s == "" {
		return s
	}

	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('-')
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// ToDisplayName converts an identifier into a human-readable title,
// e.g. "ProductOrder" -> "Product Order".
func ToDisplayName(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	caser := cases.Title(language.English)
	for i, segment := range segments {
		segments[i] = caser.String(segment)
	}

	return strings.Join(segments, " ")
}

// UpperFirst uppercases only the first rune, leaving the remainder
// untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
