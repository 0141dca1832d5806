package parser

import (
	"regexp"

	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// ICICIExtractor handles ICICI statements. Their fields are reliably
// separated by distinct labels, but OCR renders the labels letter-spaced
// ("S T A T E M E N T DATE"), so the primary strategy is the fuzzy label
// pattern. Dates appear as long month names: "September 1, 2025".
type ICICIExtractor struct{}

// statementTopSlice bounds the last-resort statement-date search to the
// document head, where ICICI prints the statement date.
const statementTopSlice = 800

var (
	iciciLongDate = `([A-Za-z]+\s\d{1,2},\s\d{4})`

	// A separator run is allowed between label and value: OCR keeps the
	// ":" but may pad it with whitespace.
	iciciStmtFuzzyRe = regexp.MustCompile(`(?i)` + fuzzyLabelPattern("STATEMENT DATE") + `[:\-\s]*` + iciciLongDate)
	iciciDueFuzzyRe  = regexp.MustCompile(`(?i)` + fuzzyLabelPattern("PAYMENT DUE DATE") + `[:\-\s]*` + iciciLongDate)

	// Windowed fallbacks when the fuzzy label did not survive OCR.
	iciciStmtWindowRe = regexp.MustCompile(`(?is)STATEMENT.{0,50}?` + iciciLongDate)
	iciciDueWindowRe  = regexp.MustCompile(`(?is)PAYMENT.{0,50}?DUE.{0,20}?` + iciciLongDate)

	iciciTotalRe = regexp.MustCompile(`(?i)(total\s*amount\s*due)[^\d]*[` + "`" + `₹]?\s?([\d,]+\.\d{2})`)
	iciciCardRe  = regexp.MustCompile(`[Xx]{4,}\s*?(\d{4})`)
)

func (e *ICICIExtractor) BankName() models.Bank {
	return models.BankICICI
}

func (e *ICICIExtractor) Extract(text string) models.StatementFields {
	fields := models.StatementFields{Bank: models.BankICICI}
	if text == "" {
		return fields
	}

	if m := iciciCardRe.FindStringSubmatch(text); m != nil {
		fields.CardLast4 = m[1]
	}

	if m := iciciStmtFuzzyRe.FindStringSubmatch(text); m != nil {
		fields.StatementDate = normalize.Date(m[len(m)-1])
	} else if m := iciciStmtWindowRe.FindStringSubmatch(text); m != nil {
		fields.StatementDate = normalize.Date(m[1])
	}
	if fields.StatementDate == "" {
		// Last resort: first date token in the document head.
		top := text
		if len(top) > statementTopSlice {
			top = top[:statementTopSlice]
		}
		fields.StatementDate = firstDate(top)
	}

	if m := iciciDueFuzzyRe.FindStringSubmatch(text); m != nil {
		fields.PaymentDueDate = normalize.Date(m[len(m)-1])
	} else if m := iciciDueWindowRe.FindStringSubmatch(text); m != nil {
		fields.PaymentDueDate = normalize.Date(m[1])
	}
	if fields.PaymentDueDate == "" && hasNoPaymentPhrase(text) {
		fields.PaymentDueDate = models.NoPaymentRequired
	}

	if m := iciciTotalRe.FindStringSubmatch(text); m != nil {
		fields.TotalAmountDue = normalize.Amount(m[2])
	}

	return fields
}
