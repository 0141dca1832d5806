package parser

import (
	"testing"

	"github.com/insightdelivered/statement-parser/internal/models"
)

func newGeneric() *GenericExtractor {
	return &GenericExtractor{Bank: models.BankGeneric, Options: DefaultOptions()}
}

func TestGenericExtract(t *testing.T) {
	text := `Credit Card Statement
Statement Date: 01/09/2025
Card Number: XXXX XXXX XXXX 1234
Payment Due Date 21/09/2025
Total Amount Due ₹12,345.67
Minimum Amount Due ₹620.00`

	fields := newGeneric().Extract(text)

	if fields.Bank != models.BankGeneric {
		t.Errorf("bank: got %v", fields.Bank)
	}
	if fields.CardLast4 != "1234" {
		t.Errorf("card_last4: got %q, want %q", fields.CardLast4, "1234")
	}
	if fields.StatementDate != "2025-09-01" {
		t.Errorf("statement_date: got %q, want %q", fields.StatementDate, "2025-09-01")
	}
	if fields.PaymentDueDate != "2025-09-21" {
		t.Errorf("payment_due_date: got %q, want %q", fields.PaymentDueDate, "2025-09-21")
	}
	if fields.TotalAmountDue != "12345.67" {
		t.Errorf("total_amount_due: got %q, want %q", fields.TotalAmountDue, "12345.67")
	}
	if fields.CurrencySymbol != "₹" {
		t.Errorf("currency_symbol: got %q, want %q", fields.CurrencySymbol, "₹")
	}
}

// Rs. abbreviations are canonicalized before matching, so the label
// search still finds the amount.
func TestGenericExtractRsAbbreviation(t *testing.T) {
	fields := newGeneric().Extract("Total Amount Due Rs. 4,500.00")
	if fields.TotalAmountDue != "4500.00" {
		t.Errorf("total_amount_due: got %q, want %q", fields.TotalAmountDue, "4500.00")
	}
}

func TestGenericSentinelFromPhrase(t *testing.T) {
	fields := newGeneric().Extract("Great news! No payment required this cycle.")
	if fields.PaymentDueDate != models.NoPaymentRequired {
		t.Errorf("payment_due_date: got %q, want sentinel", fields.PaymentDueDate)
	}
}

func TestGenericSentinelFromZeroTotal(t *testing.T) {
	fields := newGeneric().Extract("Total Amount Due ₹0.00\nThank you for paying in full.")
	if fields.TotalAmountDue != "0.00" {
		t.Errorf("total_amount_due: got %q, want %q", fields.TotalAmountDue, "0.00")
	}
	if fields.PaymentDueDate != models.NoPaymentRequired {
		t.Errorf("payment_due_date: got %q, want sentinel", fields.PaymentDueDate)
	}
}

// An explicit due date wins over the zero-total guess.
func TestGenericDueDateBeatsZeroTotal(t *testing.T) {
	fields := newGeneric().Extract("Payment Due Date 21/09/2025\nTotal Amount Due ₹0.00")
	if fields.PaymentDueDate != "2025-09-21" {
		t.Errorf("payment_due_date: got %q, want %q", fields.PaymentDueDate, "2025-09-21")
	}
}

func TestGenericOptionsDisableGuesses(t *testing.T) {
	e := &GenericExtractor{Bank: models.BankGeneric} // zero Options: both guesses off

	fields := e.Extract("Total Amount Due ₹0.00")
	if fields.PaymentDueDate != "" {
		t.Errorf("zero-total guess ran while disabled: %q", fields.PaymentDueDate)
	}

	fields = e.Extract("closing balance 1,234.56 with no labels anywhere")
	if fields.TotalAmountDue != "" {
		t.Errorf("global amount fallback ran while disabled: %q", fields.TotalAmountDue)
	}
}

// A label-free [date, total, minimum] row fills both the due date and
// the total when no labeled match exists.
func TestGenericThreeColumnRowFallback(t *testing.T) {
	fields := newGeneric().Extract("Account summary\n21/09/2025  ₹12,345.67  ₹620.00")
	if fields.PaymentDueDate != "2025-09-21" {
		t.Errorf("payment_due_date: got %q, want %q", fields.PaymentDueDate, "2025-09-21")
	}
	if fields.TotalAmountDue != "12345.67" {
		t.Errorf("total_amount_due: got %q, want %q", fields.TotalAmountDue, "12345.67")
	}
}

func TestGenericGlobalAmountFallback(t *testing.T) {
	fields := newGeneric().Extract("unlabeled document mentioning ₹1,234.56 once")
	if fields.TotalAmountDue != "1234.56" {
		t.Errorf("total_amount_due: got %q, want %q", fields.TotalAmountDue, "1234.56")
	}
}

func TestGenericEmptyDocument(t *testing.T) {
	fields := newGeneric().Extract("")
	if fields.Bank != models.BankGeneric {
		t.Errorf("bank: got %v", fields.Bank)
	}
	if fields.CardLast4 != "" || fields.StatementDate != "" ||
		fields.PaymentDueDate != "" || fields.TotalAmountDue != "" {
		t.Errorf("expected all fields empty, got %+v", fields)
	}
	if fields.CurrencySymbol != "₹" {
		t.Errorf("currency_symbol: got %q, want default", fields.CurrencySymbol)
	}
}
