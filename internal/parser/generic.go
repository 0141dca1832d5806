package parser

import (
	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/normalize"
)

// Options controls the low-confidence fallback heuristics. Both guesses
// can misfire on documents with unrelated numeric content, so callers
// may switch them off.
type Options struct {
	// ZeroTotalMeansPaid substitutes the no-payment sentinel for the due
	// date when the extracted total normalizes to exactly zero.
	ZeroTotalMeansPaid bool
	// GlobalAmountFallback accepts the first plausible amount anywhere
	// in the document when no label-anchored amount exists.
	GlobalAmountFallback bool
}

// DefaultOptions enables both fallbacks, matching historical behavior.
func DefaultOptions() Options {
	return Options{ZeroTotalMeansPaid: true, GlobalAmountFallback: true}
}

// GenericExtractor applies only the shared heuristics with no
// issuer-specific tuning. It is the mandatory fallback for unrecognized
// issuers and carries whatever bank tag it was constructed with.
type GenericExtractor struct {
	Bank    models.Bank
	Options Options
}

var (
	genericStatementLabels = []string{
		`statement\s*date`,
		`statement\s*generated\s*on`,
		`billing\s*date`,
	}
	genericDueLabels = []string{
		`payment\s*due\s*date`,
		`due\s*date`,
		`payment\s*by`,
	}
	genericTotalLabels = []string{
		`total\s*dues`,
		`total\s*amount\s*due`,
		`total\s*amount\s*payable`,
		`amount\s*due`,
		`total\s*due`,
	}
)

func (e *GenericExtractor) BankName() models.Bank {
	if e.Bank == "" || e.Bank == models.BankUnknown {
		return models.BankGeneric
	}
	return e.Bank
}

func (e *GenericExtractor) Extract(text string) models.StatementFields {
	ntext := normalize.Text(text)

	fields := models.StatementFields{
		Bank:           e.BankName(),
		CurrencySymbol: normalize.DetectCurrencySymbol(ntext),
	}
	if ntext == "" {
		return fields
	}

	fields.CardLast4 = findCardLast4(ntext)
	fields.StatementDate = findDateNearLabel(ntext, genericStatementLabels)

	fields.TotalAmountDue = findAmountNearLabel(ntext, genericTotalLabels)
	if fields.TotalAmountDue == "" {
		// Table-row fallback: the row after "Payment Due Date" often
		// holds [date, total due, minimum due] with no labels.
		if _, total, ok := findThreeColumnRow(ntext); ok {
			fields.TotalAmountDue = normalize.Amount(total)
		}
	}
	if fields.TotalAmountDue == "" && e.Options.GlobalAmountFallback {
		fields.TotalAmountDue = firstAmount(ntext)
	}

	fields.PaymentDueDate = findDateNearLabel(ntext, genericDueLabels)
	if fields.PaymentDueDate == "" {
		if date, _, ok := findThreeColumnRow(ntext); ok {
			fields.PaymentDueDate = normalize.Date(date)
		}
	}
	if fields.PaymentDueDate == "" {
		switch {
		case hasNoPaymentPhrase(ntext):
			fields.PaymentDueDate = models.NoPaymentRequired
		case e.Options.ZeroTotalMeansPaid && normalize.AmountIsZero(fields.TotalAmountDue):
			fields.PaymentDueDate = models.NoPaymentRequired
		}
	}

	return fields
}
