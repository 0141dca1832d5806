package parser

import (
	"regexp"

	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// HDFCExtractor handles HDFC statements. Their summary block renders as
// a single positional row [payment due date, total dues, minimum due]
// with the labels on a separate line, so the three-column row pattern is
// tried before any labeled search.
type HDFCExtractor struct{}

var (
	hdfcNumericOrLongDate = `(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|[A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})`

	hdfcStmtFuzzyRe = regexp.MustCompile(
		`(?is)` + fuzzyLabelPattern("STATEMENT DATE") + `.{0,80}?` + hdfcNumericOrLongDate)
	hdfcStmtWindowRe = regexp.MustCompile(`(?is)Statement.{0,60}?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)

	hdfcDueFuzzyRe = regexp.MustCompile(
		`(?is)` + fuzzyLabelPattern("PAYMENT DUE DATE") + `.{0,80}?` + hdfcNumericOrLongDate)
	hdfcDueWindowRe = regexp.MustCompile(
		`(?i)(?:Due Date|Payment Due|Pay By)[^\dA-Za-z]{0,30}` + hdfcNumericOrLongDate)

	hdfcTotalRe = regexp.MustCompile(
		`(?i)(?:Total\s+Dues|Total\s+Amount\s+Due|Total\s+Due)\D+[` + "`" + `₹]?\s*([\d,]+\.\d{2})`)
	hdfcTotalWindowRe = regexp.MustCompile(
		`(?is)(?:Total\s+Dues).{0,60}?[` + "`" + `₹]?\s*([\d,]+\.\d{2})`)
)

func (e *HDFCExtractor) BankName() models.Bank {
	return models.BankHDFC
}

func (e *HDFCExtractor) Extract(text string) models.StatementFields {
	fields := models.StatementFields{Bank: models.BankHDFC}
	if text == "" {
		return fields
	}

	ntext := normalize.Text(text)

	fields.CardLast4 = findCardLast4(ntext)

	if date, total, ok := findThreeColumnRow(ntext); ok {
		fields.PaymentDueDate = normalize.Date(date)
		fields.TotalAmountDue = normalize.Amount(total)
	} else {
		if m := hdfcStmtFuzzyRe.FindStringSubmatch(ntext); m != nil {
			fields.StatementDate = normalize.Date(m[1])
		} else if m := hdfcStmtWindowRe.FindStringSubmatch(ntext); m != nil {
			fields.StatementDate = normalize.Date(m[1])
		}

		if m := hdfcDueFuzzyRe.FindStringSubmatch(ntext); m != nil {
			fields.PaymentDueDate = normalize.Date(m[1])
		}

		if m := hdfcTotalRe.FindStringSubmatch(ntext); m != nil {
			fields.TotalAmountDue = normalize.Amount(m[1])
		} else if m := hdfcTotalWindowRe.FindStringSubmatch(ntext); m != nil {
			fields.TotalAmountDue = normalize.Amount(m[1])
		}
	}

	if fields.StatementDate == "" {
		// The statement date sits in the document head even when its
		// label did not survive extraction.
		top := ntext
		if len(top) > statementTopSlice {
			top = top[:statementTopSlice]
		}
		fields.StatementDate = firstDate(top)
	}

	if fields.PaymentDueDate == "" {
		if m := hdfcDueWindowRe.FindStringSubmatch(ntext); m != nil {
			fields.PaymentDueDate = normalize.Date(m[1])
		} else if hasNoPaymentPhrase(ntext) {
			fields.PaymentDueDate = models.NoPaymentRequired
		}
	}

	return fields
}
