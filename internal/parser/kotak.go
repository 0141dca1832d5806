package parser

import (
	"regexp"

	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// KotakExtractor handles Kotak statements. Text extraction from their
// layout drops the whitespace around labels, producing compound tokens
// like "StatementDate20-Nov-2024" and "TotalAmountDue", so label-literal
// concatenation matching is layered on top of the generic windowed
// search. Dates come as DD-Mon-YYYY.
type KotakExtractor struct{}

var (
	kotakDashDate = `([\d]{1,2}-[A-Za-z]{3}-[\d]{4})`

	kotakStmtLabeledRe = regexp.MustCompile(`(?i)(statement\s*date|statement\s*generated\s*on)[:\s]*` + kotakDashDate)
	kotakStmtCompactRe = regexp.MustCompile(`StatementDate\s*` + kotakDashDate)

	kotakDueLabeledRe = regexp.MustCompile(`(?i)(payment\s*due\s*date|remember\s*to\s*pay\s*by)[:\s]*(No payment required|[\d]{1,2}-[A-Za-z]{3}-[\d]{4})`)

	kotakTotalRe = regexp.MustCompile(`(?i)TotalAmountDue.*?([\d,]+\.\d{2})`)
	kotakCardRe  = regexp.MustCompile(`[Xx*]{4,}(\d{4})`)
)

func (e *KotakExtractor) BankName() models.Bank {
	return models.BankKotak
}

func (e *KotakExtractor) Extract(text string) models.StatementFields {
	fields := models.StatementFields{Bank: models.BankKotak}
	if text == "" {
		return fields
	}

	if m := kotakCardRe.FindStringSubmatch(text); m != nil {
		fields.CardLast4 = m[1]
	}

	if m := kotakStmtLabeledRe.FindStringSubmatch(text); m != nil {
		fields.StatementDate = normalize.Date(m[2])
	} else if m := kotakStmtCompactRe.FindStringSubmatch(text); m != nil {
		fields.StatementDate = normalize.Date(m[1])
	}

	if m := kotakTotalRe.FindStringSubmatch(text); m != nil {
		fields.TotalAmountDue = normalize.Amount(m[1])
	}

	if m := kotakDueLabeledRe.FindStringSubmatch(text); m != nil {
		if equalFoldNoPayment(m[2]) {
			fields.PaymentDueDate = models.NoPaymentRequired
		} else {
			fields.PaymentDueDate = normalize.Date(m[2])
		}
	} else if hasNoPaymentPhrase(text) {
		fields.PaymentDueDate = models.NoPaymentRequired
	} else if normalize.AmountIsZero(fields.TotalAmountDue) {
		// Secondary signal: a zero total means the cycle is settled even
		// when the due-date cell is blank.
		fields.PaymentDueDate = models.NoPaymentRequired
	}

	return fields
}

var noPaymentLiteralRe = regexp.MustCompile(`(?i)^no\s*payment\s*required$`)

func equalFoldNoPayment(s string) bool {
	return noPaymentLiteralRe.MatchString(s)
}
