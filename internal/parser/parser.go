// Package parser turns acquired statement text into a StatementFields
// record. One extractor exists per supported issuer plus a generic
// fallback; all of them share the cascading heuristics in heuristics.go.
package parser

import (
	"strings"

	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// Extractor produces a best-effort field record from statement text.
// Extract never fails: a field no strategy could resolve is left empty,
// and the worst case is a record carrying only the bank tag.
type Extractor interface {
	Extract(text string) models.StatementFields
	BankName() models.Bank
}

// New returns the extractor for the given bank tag. Unknown tags get the
// generic extractor stamped GENERIC.
func New(bank models.Bank) Extractor {
	switch bank {
	case models.BankICICI:
		return &ICICIExtractor{}
	case models.BankKotak:
		return &KotakExtractor{}
	case models.BankHDFC:
		return &HDFCExtractor{}
	default:
		return &GenericExtractor{Bank: models.BankGeneric, Options: DefaultOptions()}
	}
}

// DetectBank classifies statement text by issuer. The checks run in a
// fixed priority order because statements mention multiple institution
// names (a payment network plus the issuer); first match wins.
func DetectBank(text string) models.Bank {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "icici bank"):
		return models.BankICICI
	case strings.Contains(lower, "kotak"):
		return models.BankKotak
	case strings.Contains(lower, "hdfc"):
		return models.BankHDFC
	default:
		return models.BankUnknown
	}
}

// ParseStatement classifies the text, dispatches to the matching
// extractor, and guarantees the returned record carries a currency
// symbol even when the extractor left it empty.
func ParseStatement(text string) models.StatementFields {
	bank := DetectBank(text)
	fields := New(bank).Extract(text)
	if fields.CurrencySymbol == "" {
		fields.CurrencySymbol = normalize.DetectCurrencySymbol(normalize.Text(text))
	}
	return fields
}
