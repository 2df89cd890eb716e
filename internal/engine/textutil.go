package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// UserAgentBot identifies outbound provider requests.
const UserAgentBot = "GoRojgar/1.0"

// CleanHTML strips markup from a fragment and collapses whitespace, so
// "<p>Hello<br>world</p>" becomes "Hello world". Providers embed line-break
// markup in descriptions; only text may reach the canonical listing.
func CleanHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var parts []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		case html.TextToken:
			parts = append(parts, string(z.Text()))
		}
	}
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Devanagari, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// snippetLimit bounds description snippets to keep payloads small.
const snippetLimit = 250

// Snippet normalizes a raw provider description into a canonical
// description_snippet: markup stripped, whitespace collapsed, length-bounded.
func Snippet(s string) string {
	return TruncateRunes(CleanHTML(s), snippetLimit, "...")
}
