// Package humanize renders identifiers and lists for user-facing messages.
package humanize

import "strings"

// And joins words as an English list: "a", "a and b", "a, b, and c".
func And(words []string) string {
	return sentence(words, "and")
}

// Or joins words as an English alternative: "a", "a or b", "a, b, or c".
func Or(words []string) string {
	return sentence(words, "or")
}

func sentence(words []string, conj string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conj + " " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + ", " + conj + " " + words[len(words)-1]
}

// Label turns a snake_case or kebab-case key into a capitalized label.
func Label(key string) string {
	key = strings.TrimSuffix(key, "_id")
	fields := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	if len(fields) == 0 {
		return ""
	}
	out := strings.ToLower(strings.Join(fields, " "))
	return strings.ToUpper(out[:1]) + out[1:]
}
