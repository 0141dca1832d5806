package extractor

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// extractWithOCR rasterizes pages with MuPDF and recognizes each image
// with Tesseract. A failure on one page yields empty text for that page
// only; the page ceiling caps worst-case latency since OCR is the slow
// leg and has no cancellation once started.
func extractWithOCR(data []byte, maxPages int, lang string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ocr crashed: %v", r)
		}
	}()

	doc, openErr := fitz.NewFromMemory(data)
	if openErr != nil {
		return "", fmt.Errorf("opening pdf for ocr: %w", openErr)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	client := gosseract.NewClient()
	defer client.Close()
	if lang != "" {
		if setErr := client.SetLanguage(lang); setErr != nil {
			return "", fmt.Errorf("setting ocr language %q: %w", lang, setErr)
		}
	}

	var parts []string
	for i := 0; i < numPages; i++ {
		pageText := recognizePage(doc, client, i)
		parts = append(parts, pageText)
	}

	return strings.Join(parts, "\n"), nil
}

// recognizePage renders and recognizes a single page. Any failure is
// logged and reduced to an empty string so one bad page cannot sink the
// whole document.
func recognizePage(doc *fitz.Document, client *gosseract.Client, pageNum int) string {
	img, err := doc.Image(pageNum)
	if err != nil {
		slog.Debug("page render failed", "page", pageNum, "error", err)
		return ""
	}

	// Grayscale before recognition: tesseract does its own binarization
	// but fares better without color noise from scanned backgrounds.
	gray := imaging.Grayscale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		slog.Debug("page encode failed", "page", pageNum, "error", err)
		return ""
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		slog.Debug("ocr set image failed", "page", pageNum, "error", err)
		return ""
	}
	text, err := client.Text()
	if err != nil {
		slog.Debug("ocr recognition failed", "page", pageNum, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}
