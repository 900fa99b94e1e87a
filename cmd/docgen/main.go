// docgen renders web pages and HTML fragments to PNG or PDF through a
// remote document-generation service.
//
// Usage:
//
//	docgen png [options]
//	docgen pdf [options]
//
// The service location comes from the environment (or a .env file):
// DOCGEN_BASE_URI, and optionally DOCGEN_ENCRYPTION_KEY (hex) and
// DOCGEN_TIMEOUT (seconds).
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	docgen "github.com/umanit/go-document-generator"
)

type config struct {
	BaseURI       string `env:"DOCGEN_BASE_URI,notEmpty"`
	EncryptionKey string `env:"DOCGEN_ENCRYPTION_KEY"`
	Timeout       int    `env:"DOCGEN_TIMEOUT" envDefault:"30"`
	LogLevel      string `env:"DOCGEN_LOG_LEVEL" envDefault:"info"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "png", "pdf":
		if err := run(os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`docgen - remote document generation client

Usage:
  docgen png [options]
  docgen pdf [options]

Commands:
  png       Generate a PNG image
  pdf       Generate a PDF document

Options:
  -url <url>         Render the page at this URL
  -html <fragment>   Render this HTML fragment
  -html-file <file>  Render the HTML fragment read from file
  -o <file>          Write output to file (default: stdout)
  -scenario <name>   Rendering scenario passed to the service
  -decode            Ask the service to base64-decode the source
  -encrypted         Encrypt the message (requires DOCGEN_ENCRYPTION_KEY)

Environment:
  DOCGEN_BASE_URI        Base URI of the document service (required)
  DOCGEN_ENCRYPTION_KEY  Hex-encoded 32-byte AES-256 key
  DOCGEN_TIMEOUT         Request timeout in seconds (default: 30)
  DOCGEN_LOG_LEVEL       Log level (default: info)

Examples:
  docgen pdf -url https://example.com -o page.pdf
  docgen png -html "<h1>Banner</h1>" -o banner.png
  docgen pdf -encrypted -html-file invoice.html -o invoice.pdf
`)
}

func run(format string, args []string) error {
	var (
		rawURL     string
		html       string
		htmlFile   string
		outputFile string
		scenario   string
		decode     bool
		encrypted  bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-url":
			i++
			if i >= len(args) {
				return fmt.Errorf("-url requires an argument")
			}
			rawURL = args[i]
		case "-html":
			i++
			if i >= len(args) {
				return fmt.Errorf("-html requires an argument")
			}
			html = args[i]
		case "-html-file":
			i++
			if i >= len(args) {
				return fmt.Errorf("-html-file requires an argument")
			}
			htmlFile = args[i]
		case "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("-o requires an argument")
			}
			outputFile = args[i]
		case "-scenario":
			i++
			if i >= len(args) {
				return fmt.Errorf("-scenario requires an argument")
			}
			scenario = args[i]
		case "-decode":
			decode = true
		case "-encrypted":
			encrypted = true
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	if htmlFile != "" {
		data, err := os.ReadFile(htmlFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", htmlFile, err)
		}
		html = string(data)
	}
	if (rawURL == "") == (html == "") {
		return fmt.Errorf("exactly one of -url, -html, or -html-file must be given")
	}

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		log.SetLevel(level)
	}

	genOpts := []docgen.Option{
		docgen.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
		docgen.WithLogger(log),
	}
	if cfg.EncryptionKey != "" {
		key, err := hex.DecodeString(cfg.EncryptionKey)
		if err != nil {
			return fmt.Errorf("DOCGEN_ENCRYPTION_KEY is not valid hex")
		}
		genOpts = append(genOpts, docgen.WithEncryptionKey(key))
	}

	g, err := docgen.NewGenerator(cfg.BaseURI, genOpts...)
	if err != nil {
		return err
	}
	g.SetEncryption(encrypted)

	options := map[string]any{}
	if decode {
		options["decode"] = true
	}
	if scenario != "" {
		options["scenario"] = scenario
	}

	ctx := context.Background()

	var res *docgen.Result
	switch {
	case format == "png" && rawURL != "":
		res, err = g.GeneratePNGFromURL(ctx, rawURL, options)
	case format == "png":
		res, err = g.GeneratePNGFromHTML(ctx, html, options)
	case rawURL != "":
		res, err = g.GeneratePDFFromURL(ctx, rawURL, options)
	default:
		res, err = g.GeneratePDFFromHTML(ctx, html, options)
	}
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err = res.WriteTo(os.Stdout)
		return err
	}
	if err := res.WriteToFile(outputFile, 0o644); err != nil {
		return err
	}
	log.Infof("wrote %d bytes to %s", res.Len(), outputFile)
	return nil
}
