package extractor

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractWithFitz is the secondary digital strategy: MuPDF's text
// extraction handles font encodings the structured library cannot
// decode.
func extractWithFitz(data []byte, maxPages int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mupdf crashed: %v", r)
		}
	}()

	doc, openErr := fitz.NewFromMemory(data)
	if openErr != nil {
		return "", fmt.Errorf("opening pdf: %w", openErr)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	var pages []string
	for i := 0; i < numPages; i++ {
		pageText, pageErr := doc.Text(i)
		if pageErr != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	if !isReadableText(pages) {
		return "", nil
	}
	return strings.Join(pages, "\n"), nil
}
