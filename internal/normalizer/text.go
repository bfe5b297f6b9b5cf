// Package normalizer cleans scraped article text and dates before validation.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"articleqc/pkg/utils"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// entityReplacer decodes the HTML entities scrapers commonly leave behind.
// Anything not listed passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", "\u00a0",
	"&#160;", "\u00a0",
	"&amp;", "&",
	"&#38;", "&",
	"&quot;", `"`,
	"&#34;", `"`,
	"&lt;", "<",
	"&#60;", "<",
	"&gt;", ">",
	"&#62;", ">",
	"&#39;", "'",
	"&#x27;", "'",
	"&apos;", "'",
	"&ndash;", "–",
	"&mdash;", "—",
	"&hellip;", "…",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
)

// CleanText normalizes a scraped text field: HTML tags are removed, known
// entities decoded, Unicode space variants and zero-width characters turned
// into plain spaces, control characters dropped and whitespace collapsed.
//
// Decoding can expose new markup ("&lt;b&gt;" becomes "<b>"), so the pass is
// repeated until the text stops changing. Every pass that changes already
// collapsed text makes it shorter, which bounds the loop.
func CleanText(s string) string {
	out := cleanPass(s)
	for {
		next := cleanPass(out)
		if next == out {
			return out
		}

		out = next
	}
}

func cleanPass(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = strings.Map(normalizeRune, s)

	return utils.CollapseWhitespace(s)
}

// normalizeRune maps invisible characters to a space and drops control
// characters. Whitespace controls (tab, newline) become spaces so that words
// on either side stay apart. Symbols such as © ® ™ are kept.
func normalizeRune(r rune) rune {
	switch {
	case isInvisible(r):
		return ' '
	case unicode.IsSpace(r):
		return ' '
	case unicode.IsControl(r):
		return -1
	default:
		return r
	}
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
		return true
	}

	return unicode.Is(unicode.Zs, r)
}
