package exam

import "strings"

// NormalizeIdentifier canonicalizes a question identifier surface form so
// that "Q.5a)", "5A" and " 5a:" all compare equal. Punctuation and
// whitespace are stripped, a leading question keyword is removed, and the
// remainder is lower-cased.
func NormalizeIdentifier(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.TrimPrefix(s, "question")
	s = strings.TrimPrefix(s, "q")

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParentIdentifier returns the numeric prefix of a sub-part identifier:
// "5a" → "5". Identifiers without a letter suffix return themselves.
func ParentIdentifier(id string) string {
	norm := NormalizeIdentifier(id)
	i := 0
	for i < len(norm) && norm[i] >= '0' && norm[i] <= '9' {
		i++
	}
	return norm[:i]
}

// IsSubPart reports whether id carries a letter suffix ("5a", "12b").
func IsSubPart(id string) bool {
	norm := NormalizeIdentifier(id)
	return norm != "" && ParentIdentifier(id) != norm
}
