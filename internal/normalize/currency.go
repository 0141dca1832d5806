package normalize

import "strings"

// currencyScanLimit bounds how much of the document is scanned for
// currency cues. Statements put the currency on the first page.
const currencyScanLimit = 3000

// currencyCues is checked in order; the first cue found wins. Symbol
// cues come before code and abbreviation cues for the same currency.
var currencyCues = []struct {
	cue    string
	symbol string
	code   string
}{
	{"₹", "₹", "INR"},
	{"INR", "₹", "INR"},
	{"Rs", "₹", "INR"},
	{"$", "$", "USD"},
	{"USD", "$", "USD"},
	{"€", "€", "EUR"},
	{"EUR", "€", "EUR"},
	{"£", "£", "GBP"},
	{"GBP", "£", "GBP"},
}

// DetectCurrencySymbol scans a bounded prefix of the document for
// currency cues and returns the matching symbol, defaulting to ₹ when
// detection is inconclusive.
func DetectCurrencySymbol(text string) string {
	prefix := text
	if len(prefix) > currencyScanLimit {
		prefix = prefix[:currencyScanLimit]
	}
	for _, c := range currencyCues {
		if strings.Contains(prefix, c.cue) {
			return c.symbol
		}
	}
	return "₹"
}

// CurrencyCode maps a detected symbol to its ISO 4217 code, using the
// same cue ordering as DetectCurrencySymbol. Unknown symbols map to INR.
func CurrencyCode(symbol string) string {
	for _, c := range currencyCues {
		if c.symbol == symbol || c.cue == symbol {
			return c.code
		}
	}
	return "INR"
}
