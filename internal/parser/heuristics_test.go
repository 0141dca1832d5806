package parser

import (
	"regexp"
	"strings"
	"testing"
)

func TestFindCardLast4(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaced mask run", "XXXX XXXX XXXX 1234", "1234"},
		{"mixed digits and mask", "4147XXXXXXXX9270", "9270"},
		{"card number label", "card no: 1234 5678 9012 3456", "3456"},
		{"card number label with mask", "Card Number: 4532 11XX XXXX 7788", "7788"},
		{"primary card label", "Primary Card Number 4111XXXXXXXX1111", "1111"},
		{"star mask", "**** **** **** 4321", "4321"},
		{"bare long pan", "4111 1111 1111 1111", "1111"},
		{"bare four digits rejected", "statement year 2024", ""},
		{"date fragment rejected", "generated on 12/09/2025", ""},
		{"nothing", "no card in sight", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findCardLast4(tt.input)
			if got != tt.expected {
				t.Errorf("findCardLast4(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindDateNearLabel(t *testing.T) {
	labels := []string{`payment\s*due\s*date`, `due\s*date`}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"adjacent", "Payment Due Date 12/09/2025", "2025-09-12"},
		{"colon separated", "Payment Due Date: 12/09/2025", "2025-09-12"},
		{"newline between", "Payment Due Date\n12/09/2025", "2025-09-12"},
		{"ocr gap", "Payment Due Date" + strings.Repeat(" .", 40) + " 12/09/2025", "2025-09-12"},
		{"month name date", "Due Date September 1, 2025", "2025-09-01"},
		{"no label", "some other text 12/09/2025", ""},
		{"label without date", "Payment Due Date pending", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findDateNearLabel(tt.input, labels)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFindAmountNearLabel(t *testing.T) {
	labels := []string{`total\s*amount\s*due`, `total\s*due`}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"rupee amount", "Total Amount Due ₹4,500.00", "4500.00"},
		{"backtick rupee", "Total Amount Due `88,375.20", "88375.20"},
		{"plain decimal", "Total Due 1234.56", "1234.56"},
		{"second occurrence has the amount", "Total Amount Due\nsee below\nTotal Amount Due ₹99.00", "99.00"},
		{"integer is not an amount", "Total Amount Due 1234", ""},
		{"no label", "₹4,500.00 somewhere", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findAmountNearLabel(tt.input, labels)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// The day from a date token must never be captured as an amount.
func TestAmountTokenSkipsDateFragments(t *testing.T) {
	if got := firstAmount("due on 21/09/2025 pay ₹1,250.00"); got != "1250.00" {
		t.Errorf("got %q, want %q", got, "1250.00")
	}
	if got := firstAmount("due on 21/09/2025"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFindThreeColumnRow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDate  string
		wantTotal string
		wantOK    bool
	}{
		{"whitespace separated", "20/11/2024  ₹12,345.00  ₹500.00", "20/11/2024", "12,345.00", true},
		{"pipe separated", "20/11/2024 | 12,345.00 | 500.00", "20/11/2024", "12,345.00", true},
		{"comma separated", "20-11-2024 , 12,345.00 , 500.00", "20-11-2024", "12,345.00", true},
		{"only one amount", "20/11/2024 12,345.00", "", "", false},
		{"no date", "12,345.00 500.00", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, total, ok := findThreeColumnRow(tt.input)
			if ok != tt.wantOK || date != tt.wantDate || total != tt.wantTotal {
				t.Errorf("got (%q, %q, %v), want (%q, %q, %v)",
					date, total, ok, tt.wantDate, tt.wantTotal, tt.wantOK)
			}
		})
	}
}

func TestFuzzyLabelPattern(t *testing.T) {
	re := mustFuzzy(t, "STATEMENT DATE")

	matches := []string{
		"STATEMENT DATE",
		"S T A T E M E N T DATE",
		"STATEMENTT  DATE",
		"S T A T E M E N T  D A T E",
	}
	for _, s := range matches {
		if !re.MatchString(s) {
			t.Errorf("fuzzy pattern did not match %q", s)
		}
	}

	if re.MatchString("STATE DATE") {
		t.Error("fuzzy pattern matched a truncated label")
	}
}

func mustFuzzy(t *testing.T, label string) *regexp.Regexp {
	t.Helper()
	return regexp.MustCompile(`(?i)` + fuzzyLabelPattern(label))
}

func TestHasNoPaymentPhrase(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"No payment required", true},
		{"NO PAYMENT REQUIRED", true},
		{"no  payment  required this month", true},
		{"nopaymentrequired", true},
		{"payment required", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := hasNoPaymentPhrase(tt.input); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
