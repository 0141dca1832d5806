package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/insightdelivered/statement-parser/internal/api"
	"github.com/insightdelivered/statement-parser/internal/extractor"
)

const version = "1.0.0"

func main() {
	fs := ff.NewFlagSet("statement-parser")
	var (
		port        = fs.IntLong("port", 5000, "HTTP server port")
		ocrPages    = fs.IntLong("ocr-pages", extractor.DefaultOCRPages, "Default OCR page limit per document")
		textPages   = fs.IntLong("text-pages", 0, "Default digital-extraction page limit (0 = all pages)")
		ocrLang     = fs.StringLong("ocr-lang", extractor.DefaultLanguage, "Default Tesseract language code")
		showVersion = fs.BoolLong("version", "Print version and exit")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("STATEMENT_PARSER"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Printf("statement-parser v%s\n", version)
		os.Exit(0)
	}

	handler := api.NewHandler()
	handler.Defaults = extractor.Options{
		TextPages: *textPages,
		OCRPages:  *ocrPages,
		Language:  *ocrLang,
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	handler.RegisterRoutes(app)

	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := app.Listen(addr); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("server started", "address", addr, "version", version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
