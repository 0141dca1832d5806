// Package api exposes the extraction engine over HTTP. The transport is
// a thin wrapper: it moves bytes in, runs acquisition and parsing, and
// serializes the field record out. All recovery logic lives below it.
package api

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-parser/internal/extractor"
	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/parser"
)

const version = "1.0.0"

// Meta is the per-call diagnostic payload. It is observability only:
// nothing downstream may depend on it.
type Meta struct {
	Method     models.Method `json:"method"`
	TextLength int           `json:"text_length"`
}

// ParseResponse is the JSON body returned by /api/parse.
type ParseResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	models.StatementFields
	Meta    *Meta  `json:"meta,omitempty"`
	RawText string `json:"raw_text,omitempty"`
}

// Handler holds the HTTP handlers and the acquisition pipeline they run.
// Defaults supplies server-level page limits and OCR language applied
// when a request omits the corresponding query params.
type Handler struct {
	Pipeline *extractor.Pipeline
	Defaults extractor.Options
}

// NewHandler wires the real acquisition pipeline.
func NewHandler() *Handler {
	return &Handler{Pipeline: extractor.NewPipeline()}
}

// RegisterRoutes sets up the API routes on the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.Health)
	app.Post("/api/parse", h.Parse)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
	})
}

// Parse accepts a multipart statement upload and returns the extracted
// field record. Query params: mode (auto|text|ocr), text_pages,
// ocr_pages, lang, debug.
func (h *Handler) Parse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file provided. Use form field 'file'.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not open uploaded file.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not read uploaded file.")
	}
	if len(data) == 0 {
		return writeError(c, fiber.StatusBadRequest, "Empty file.")
	}

	defaults := h.Defaults
	if defaults.OCRPages <= 0 {
		defaults.OCRPages = extractor.DefaultOCRPages
	}
	if defaults.Language == "" {
		defaults.Language = extractor.DefaultLanguage
	}

	opts := extractor.Options{
		Mode:      extractor.ParseMode(c.Query("mode")),
		TextPages: queryInt(c, "text_pages", defaults.TextPages),
		OCRPages:  queryInt(c, "ocr_pages", defaults.OCRPages),
		Language:  c.Query("lang", defaults.Language),
	}

	res, err := h.Pipeline.Acquire(data, opts)
	if errors.Is(err, extractor.ErrNoText) {
		return writeError(c, fiber.StatusUnprocessableEntity, "Unable to extract text from document.")
	}
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	fields := parser.ParseStatement(res.Text)

	slog.Info("statement parsed",
		"bank", fields.Bank,
		"method", res.Method,
		"text_length", len(res.Text),
	)

	resp := ParseResponse{
		Success:         true,
		StatementFields: fields,
		Meta:            &Meta{Method: res.Method, TextLength: len(res.Text)},
	}
	if c.QueryBool("debug") {
		resp.RawText = res.Text
	}
	return c.JSON(resp)
}

// queryInt parses an integer query param, keeping the default on absent
// or malformed values rather than erroring.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success: false,
		Error:   msg,
	})
}
