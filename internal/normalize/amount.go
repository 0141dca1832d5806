package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalNumber matches digits with an optional 1-2 digit fractional part.
var decimalNumber = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)

// Amount strips currency marks and grouping separators from a matched
// amount snippet and returns the bare decimal number, or "" when no
// number is present. It never guesses: "" means the caller should try
// the next strategy.
func Amount(raw string) string {
	if raw == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"`", "", // OCR renders ₹ as a backtick in some statements
		"₹", "",
		"£", "",
		"$", "",
		"€", "",
		",", "",
		" ", "",
		"\u00A0", "",
	)
	raw = replacer.Replace(raw)
	return decimalNumber.FindString(raw)
}

// AmountIsZero reports whether a normalized amount string represents
// exactly zero. Malformed input is not zero.
func AmountIsZero(amount string) bool {
	if amount == "" {
		return false
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return d.IsZero()
}
