package models

// Bank identifies the issuer whose layout an extractor is tuned for.
type Bank string

const (
	// BankUnknown is the classifier's "no match" value. It never appears
	// on a returned record; the router maps it to BankGeneric.
	BankUnknown Bank = "UNKNOWN"
	BankGeneric Bank = "GENERIC"
	BankHDFC    Bank = "HDFC"
	BankICICI   Bank = "ICICI"
	BankKotak   Bank = "KOTAK"
)

// NoPaymentRequired is the sentinel stored in PaymentDueDate when the
// statement says no payment is due (explicitly, or via a zero total).
const NoPaymentRequired = "No payment required"

// StatementFields is the record produced by one extraction call.
// Optional fields are empty when no heuristic resolved them; that is a
// normal outcome, not an error. The record is created fresh per document
// and never mutated after being returned.
type StatementFields struct {
	Bank           Bank   `json:"bank"`
	CardLast4      string `json:"card_last4,omitempty"`
	StatementDate  string `json:"statement_date,omitempty"`
	PaymentDueDate string `json:"payment_due_date,omitempty"`
	TotalAmountDue string `json:"total_amount_due,omitempty"`
	CurrencySymbol string `json:"currency_symbol"`
}

// Method records which acquisition strategy produced the text for one
// call. It is part of each call's result, not shared state, so concurrent
// extractions cannot interfere with each other's diagnostics.
type Method string

const (
	MethodNone     Method = "none"
	MethodText     Method = "text-pdf"
	MethodTextFitz Method = "text-fitz"
	MethodOCR      Method = "ocr-tesseract"
)
