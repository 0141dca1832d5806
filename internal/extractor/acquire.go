// Package extractor converts raw PDF bytes into plain text. Digital
// extraction strategies are tried in a fixed preference order and OCR is
// the last resort; each strategy is isolated, so a failing strategy
// means "no result, try the next", never a pipeline failure.
package extractor

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/models"
)

// Mode selects which acquisition legs run.
type Mode string

const (
	// ModeAuto tries digital extraction and falls back to OCR when the
	// digital legs yield nothing readable.
	ModeAuto Mode = "auto"
	// ModeText runs digital extraction only.
	ModeText Mode = "text"
	// ModeOCR skips digital extraction entirely.
	ModeOCR Mode = "ocr"
)

// ParseMode maps a request string to a Mode; unknown values fall back to
// auto rather than erroring, matching the lenient query-param contract.
func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "text":
		return ModeText
	case "ocr":
		return ModeOCR
	default:
		return ModeAuto
	}
}

// ErrNoText means every strategy was exhausted without producing usable
// text. It is distinct from "document read but fields missing", which is
// not an error at all.
var ErrNoText = errors.New("no readable text could be extracted from document")

// Options bounds one acquisition call.
type Options struct {
	Mode      Mode
	TextPages int    // page ceiling for digital extraction; 0 means all
	OCRPages  int    // page ceiling for OCR rendering
	Language  string // tesseract language code, e.g. "eng"
}

const (
	DefaultOCRPages = 10
	DefaultLanguage = "eng"
)

// Result carries the text plus per-call diagnostics. The method is part
// of the result value, never process state, so concurrent acquisitions
// cannot observe each other.
type Result struct {
	Text   string
	Method models.Method
}

// TextStrategy extracts digital text from PDF bytes, bounded by a page
// limit. An error means this strategy failed; the pipeline moves on.
type TextStrategy struct {
	Method  models.Method
	Extract func(data []byte, maxPages int) (string, error)
}

// OCRStrategy rasterizes pages and recognizes them, bounded by a page
// limit and parameterized by recognition language.
type OCRStrategy func(data []byte, maxPages int, lang string) (string, error)

// Pipeline is the ordered strategy set for one deployment. Strategies
// are plain function values so the cascade is auditable and each entry
// is independently testable.
type Pipeline struct {
	Text []TextStrategy
	OCR  OCRStrategy
}

// NewPipeline wires the real strategies: the structured PDF library
// first, then MuPDF, then Tesseract OCR.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Text: []TextStrategy{
			{Method: models.MethodText, Extract: extractWithPDFLibrary},
			{Method: models.MethodTextFitz, Extract: extractWithFitz},
		},
		OCR: extractWithOCR,
	}
}

// Acquire runs the pipeline for one document. The returned Result always
// reflects the method that actually produced the text; ErrNoText is
// returned only when every applicable leg came up empty.
func (p *Pipeline) Acquire(data []byte, opts Options) (Result, error) {
	if opts.OCRPages <= 0 {
		opts.OCRPages = DefaultOCRPages
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	res := Result{Method: models.MethodNone}

	if opts.Mode != ModeOCR {
		for _, s := range p.Text {
			text, err := s.Extract(data, opts.TextPages)
			if err != nil {
				// Tool failure, not "no match": log and move on.
				slog.Debug("text strategy failed", "method", s.Method, "error", err)
				continue
			}
			if strings.TrimSpace(text) != "" {
				res.Text = text
				res.Method = s.Method
				break
			}
		}
	}

	if res.Method == models.MethodNone && opts.Mode != ModeText {
		text, err := p.OCR(data, opts.OCRPages, opts.Language)
		if err != nil {
			slog.Debug("ocr strategy failed", "error", err)
		} else if strings.TrimSpace(text) != "" {
			res.Text = text
			res.Method = models.MethodOCR
		}
	}

	if res.Method == models.MethodNone {
		return res, ErrNoText
	}
	return res, nil
}
