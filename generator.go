package docgen

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service endpoints and content types for the two message framings.
const (
	plainEndpoint     = "/"
	encryptedEndpoint = "/encrypted"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

// Generator renders URLs and HTML fragments to PNG or PDF through a remote
// document-generation service.
//
// A Generator is safe for concurrent use. The encryption flag set with
// [Generator.SetEncryption] is read atomically at call time, so toggling it
// while calls are in flight is well defined: each call uses the value
// observed when it starts.
type Generator struct {
	baseURI   string
	key       []byte
	client    Doer
	log       logrus.FieldLogger
	encrypted atomic.Bool
}

// NewGenerator creates a Generator targeting the service at baseURI.
// A trailing slash on baseURI is stripped. The transport, timeout, logger,
// and encryption key are supplied through options; everything is explicit,
// nothing is discovered from the environment.
func NewGenerator(baseURI string, opts ...Option) (*Generator, error) {
	if strings.TrimSpace(baseURI) == "" {
		return nil, newError(KindConfiguration, "base URI required")
	}

	cfg := defaultGeneratorConfig()
	for _, o := range opts {
		o(&cfg)
	}

	client := cfg.client
	if client == nil {
		client = newHTTPClient(cfg.timeout)
	}

	return &Generator{
		baseURI: strings.TrimRight(baseURI, "/"),
		key:     cfg.key,
		client:  client,
		log:     cfg.logger,
	}, nil
}

// SetEncryption enables or disables message encryption for subsequent calls.
// Enabling it requires a key configured with [WithEncryptionKey]; the key is
// checked when a call is made, not here.
func (g *Generator) SetEncryption(enabled bool) {
	g.encrypted.Store(enabled)
}

// GeneratePNGFromURL renders the web page at url to a PNG image.
// The options mapping accepts the keys "decode", "pageOptions", and
// "scenario"; nil means all defaults.
func (g *Generator) GeneratePNGFromURL(ctx context.Context, url string, options map[string]any) (*Result, error) {
	return g.generate(ctx, outputPNG, sourceURL, url, options)
}

// GeneratePNGFromHTML renders the HTML fragment to a PNG image.
func (g *Generator) GeneratePNGFromHTML(ctx context.Context, html string, options map[string]any) (*Result, error) {
	return g.generate(ctx, outputPNG, sourceHTML, html, options)
}

// GeneratePDFFromURL renders the web page at url to a PDF document.
func (g *Generator) GeneratePDFFromURL(ctx context.Context, url string, options map[string]any) (*Result, error) {
	return g.generate(ctx, outputPDF, sourceURL, url, options)
}

// GeneratePDFFromHTML renders the HTML fragment to a PDF document.
func (g *Generator) GeneratePDFFromHTML(ctx context.Context, html string, options map[string]any) (*Result, error) {
	return g.generate(ctx, outputPDF, sourceHTML, html, options)
}

// generate is the single path behind the four public entry points: normalize
// options, build the message, optionally encrypt it, POST it, and hand back
// the response body untouched.
func (g *Generator) generate(ctx context.Context, outputType, sourceKey, sourceValue string, options map[string]any) (*Result, error) {
	callID := uuid.NewString()

	opts, err := normalizeOptions(options)
	if err != nil {
		return nil, g.fail(callID, err)
	}

	message, err := buildMessage(outputType, sourceKey, sourceValue, opts)
	if err != nil {
		return nil, g.fail(callID, err)
	}

	body := message
	contentType := contentTypeJSON
	endpoint := plainEndpoint
	if g.encrypted.Load() {
		envelope, err := encryptMessage(g.key, message)
		if err != nil {
			return nil, g.fail(callID, err)
		}
		body = []byte(envelope)
		contentType = contentTypeText
		endpoint = encryptedEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURI+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, g.fail(callID, wrapError(KindTransport, "building request", err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, g.fail(callID, wrapError(KindTransport, "posting to document service", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused. The upstream body is
		// deliberately absent from the error.
		io.Copy(io.Discard, resp.Body)
		return nil, g.fail(callID, &Error{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			msg:        "Invalid response code",
		})
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, g.fail(callID, wrapError(KindTransport, "reading response body", err))
	}

	return &Result{data: payload}, nil
}

// fail logs the failure when a logger is configured and returns the error
// unchanged. The log entry carries the error message only, never payloads
// or key material.
func (g *Generator) fail(callID string, err error) error {
	if g.log != nil {
		g.log.WithField("call_id", callID).Error(err.Error())
	}
	return err
}
