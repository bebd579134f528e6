package types

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameKey returns the comparison key for a class or subject name: the trimmed
// name, Unicode case-folded. It is never shown to users.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether a and b collide case-insensitively.
func SameName(a, b string) bool { return NameKey(a) == NameKey(b) }
