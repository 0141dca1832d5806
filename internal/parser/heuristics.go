package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// Reusable token patterns shared by every extractor.
const (
	// dateToken matches the date shapes seen across issuer layouts:
	// 01/09/2025, 01-09-2025, 01.09.2025, 2025-09-01, September 1, 2025,
	// 1 September 2025.
	dateToken = `(?:` +
		`\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}` +
		`|\d{4}-\d{2}-\d{2}` +
		`|[A-Za-z]{3,9}\s\d{1,2},\s\d{4}` +
		`|\d{1,2}\s[A-Za-z]{3,9}\s\d{4}` +
		`)`

	// amountToken requires a decimal part or grouped commas with decimals
	// so the day of a nearby date (e.g. 21 from 21/09/2025) is never
	// captured as an amount.
	amountToken = `(?:₹|` + "`" + `|\$)?\s*([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.\d{2})|[0-9]+(?:\.\d{2}))`
)

// Default search windows after a label. OCR can insert large gaps between
// a label and its value, so the windows are generous.
const (
	dateSpanWindow   = 120 // label..date matched in one pattern
	dateScanWindow   = 150 // flat window scanned after the label position
	amountScanWindow = 200
)

var (
	dateTokenRe   = regexp.MustCompile(`(?i)` + dateToken)
	amountTokenRe = regexp.MustCompile(amountToken)
	digitRe       = regexp.MustCompile(`\d`)

	noPaymentPhraseRe = regexp.MustCompile(`(?i)no\s*payment\s*required`)
)

// findDateNearLabel locates each label case-insensitively and searches a
// bounded window after it for a date token. The first token found is
// normalized and returned; "" means no label matched.
func findDateNearLabel(text string, labels []string) string {
	for _, label := range labels {
		re, err := regexp.Compile(`(?is)` + label + fmt.Sprintf(`.{0,%d}?(`, dateSpanWindow) + dateToken + `)`)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(text); m != nil {
			return normalize.Date(m[1])
		}

		// Window fallback: scan a flat slice after the label position.
		pos, err := regexp.Compile(`(?i)` + label)
		if err != nil {
			continue
		}
		if loc := pos.FindStringIndex(text); loc != nil {
			end := loc[1] + dateScanWindow
			if end > len(text) {
				end = len(text)
			}
			if m := dateTokenRe.FindString(text[loc[1]:end]); m != "" {
				return normalize.Date(m)
			}
		}
	}
	return ""
}

// findAmountNearLabel scans a bounded window after each occurrence of
// each label for an amount token, accepting the first one found.
func findAmountNearLabel(text string, labels []string) string {
	for _, label := range labels {
		re, err := regexp.Compile(`(?i)` + label)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			end := loc[1] + amountScanWindow
			if end > len(text) {
				end = len(text)
			}
			if m := amountTokenRe.FindStringSubmatch(text[loc[1]:end]); m != nil {
				return normalize.Amount(m[1])
			}
		}
	}
	return ""
}

// firstAmount returns the first plausible amount token anywhere in the
// document. Lowest-confidence strategy; used only after every
// label-anchored search has failed.
func firstAmount(text string) string {
	if m := amountTokenRe.FindStringSubmatch(text); m != nil {
		return normalize.Amount(m[1])
	}
	return ""
}

// firstDate returns the first date token in the given text, "" if none.
func firstDate(text string) string {
	if m := dateTokenRe.FindString(text); m != "" {
		return normalize.Date(m)
	}
	return ""
}

// fuzzyLabelPattern builds a label pattern tolerant of OCR noise:
// each letter may be repeated and followed by whitespace, so
// "S T A T E M E N T DATE" and "STATEMENTT DATE" both match
// "STATEMENT DATE" without a fuzzy string-similarity engine.
func fuzzyLabelPattern(label string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(label) {
		if c >= 'A' && c <= 'Z' {
			fmt.Fprintf(&b, `%c+\s*`, c)
		} else {
			b.WriteString(regexp.QuoteMeta(string(c)) + `\s*`)
		}
	}
	return b.String()
}

// Some issuers render one row holding [due date, total due, minimum due]
// with no preceding labels. Two separator styles are seen: plain
// whitespace, and pipe/comma delimited.
var (
	threeColumnWS = regexp.MustCompile(
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+[` + "`" + `₹]?\s*([\d,]+\.\d{2})\s+[` + "`" + `₹]?\s*([\d,]+\.\d{2})`)
	threeColumnSep = regexp.MustCompile(
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s*[|,]\s*[` + "`" + `₹]?\s*([\d,]+\.\d{2})\s*[|,]\s*[` + "`" + `₹]?\s*([\d,]+\.\d{2})`)
)

// findThreeColumnRow matches the positional [date, total, minimum] row
// and returns the raw date and total tokens.
func findThreeColumnRow(text string) (date, total string, ok bool) {
	if m := threeColumnWS.FindStringSubmatch(text); m != nil {
		return m[1], m[2], true
	}
	if m := threeColumnSep.FindStringSubmatch(text); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// Masked card-number patterns, in priority order. Each is tried only if
// the previous yielded nothing; a bare 4-digit cluster is never accepted
// because it is usually a year or date fragment.
var (
	cardLabelRe = regexp.MustCompile(
		`(?i)(?:primary\s*card\s*number|primary\s*card|card\s*number|card\s*no|masked\s*card\s*number)\s*[:\s\-]*([0-9Xx*\s\-]{8,30})`)
	cardMixedMaskRe = regexp.MustCompile(`\b\d{2,6}[Xx*]{4,}[Xx*\s\-]*(\d{4})\b`)
	cardBareMaskRe  = regexp.MustCompile(`(?:[Xx*][\s\-]?){4,}(\d{4})\b`)
	cardLongPANRe   = regexp.MustCompile(`\b(?:\d[ \-]?){12,19}\b`)
)

// findCardLast4 recovers the last 4 digits of the card number from a
// labeled masked run, a mixed digit/mask run, a bare mask run, or a long
// unmasked digit cluster, in that order.
func findCardLast4(text string) string {
	if m := cardLabelRe.FindStringSubmatch(text); m != nil {
		if last4 := lastFourDigits(m[1]); last4 != "" {
			return last4
		}
	}
	if m := cardMixedMaskRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := cardBareMaskRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := cardLongPANRe.FindString(text); m != "" {
		if last4 := lastFourDigits(m); last4 != "" {
			return last4
		}
	}
	return ""
}

func lastFourDigits(s string) string {
	digits := digitRe.FindAllString(s, -1)
	if len(digits) < 4 {
		return ""
	}
	return strings.Join(digits[len(digits)-4:], "")
}

// hasNoPaymentPhrase reports whether the document states that no payment
// is due.
func hasNoPaymentPhrase(text string) bool {
	return noPaymentPhraseRe.MatchString(text)
}
