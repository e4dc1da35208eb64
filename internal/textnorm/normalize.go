// Package textnorm flattens scraped text to plain ASCII.
package textnorm

import "strings"

var punctuation = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "",
	" ", " ",
)

// Clean replaces typographic punctuation with ASCII equivalents, drops
// any remaining non-ASCII runes, and collapses runs of whitespace.
// Idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	s = punctuation.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
