package bean

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matchPrefix returns the first prefix that makes name an accessor name. A
// non-empty prefix must be followed by an upper-case letter; the empty
// prefix matches any name.
func matchPrefix(name string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		if prefix == "" {
			return "", true
		}
		if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name[len(prefix):])
		if unicode.IsUpper(r) {
			return prefix, true
		}
	}
	return "", false
}

// PropertyName strips prefix from an accessor name and decapitalizes the
// remainder.
func PropertyName(accessor, prefix string) string {
	if prefix == "" {
		return accessor
	}
	return Decapitalize(strings.TrimPrefix(accessor, prefix))
}

// Decapitalize lower-cases the first letter of s, except when the first two
// letters are both upper case: "FooBar" becomes "fooBar", "URL" stays "URL".
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	if size < len(s) {
		second, _ := utf8.DecodeRuneInString(s[size:])
		if unicode.IsUpper(first) && unicode.IsUpper(second) {
			return s
		}
	}
	return string(unicode.ToLower(first)) + s[size:]
}
