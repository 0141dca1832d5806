// Package normalize holds the pure text, date, amount and currency
// normalization used by every extractor. Normalization runs before any
// label or token matching so the heuristics stay layout-agnostic.
package normalize

import (
	"regexp"
	"strings"
)

var (
	dashVariants = regexp.MustCompile("[–—−]") // en dash, em dash, minus sign
	rupeeAbbrev  = regexp.MustCompile(`(?i)\bRs\.?\s*`)
	rupeeSpace   = regexp.MustCompile(`₹\s*`)
	hSpaceRuns   = regexp.MustCompile(`[ \t]+`)
)

// Text collapses line-ending variants, replaces non-breaking spaces,
// normalizes dash variants to a plain hyphen, canonicalizes "Rs."/"Rs"
// to ₹, collapses horizontal whitespace runs, and trims.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = dashVariants.ReplaceAllString(s, "-")
	s = rupeeAbbrev.ReplaceAllString(s, "₹")
	s = rupeeSpace.ReplaceAllString(s, "₹")
	s = hSpaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
