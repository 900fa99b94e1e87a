package docgen

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Doer issues a single HTTP request. It is satisfied by [*http.Client] and
// lets callers inject their own transport, including instrumented or
// test doubles.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// generatorConfig holds internal configuration for a Generator.
type generatorConfig struct {
	client  Doer
	timeout time.Duration
	logger  logrus.FieldLogger
	key     []byte
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		timeout: 30 * time.Second,
	}
}

// Option configures a [Generator].
type Option func(*generatorConfig)

// WithHTTPClient sets the HTTP client used to reach the document service.
// By default a client with pooled connections and the configured timeout
// is constructed.
func WithHTTPClient(client Doer) Option {
	return func(c *generatorConfig) {
		c.client = client
	}
}

// WithTimeout sets the round-trip timeout of the default HTTP client.
// Defaults to 30 seconds. It has no effect when a client is injected
// with [WithHTTPClient].
func WithTimeout(d time.Duration) Option {
	return func(c *generatorConfig) {
		c.timeout = d
	}
}

// WithLogger sets an optional logger that receives one error-level entry
// per failed generation call. Without a logger failures are still returned,
// just not logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *generatorConfig) {
		c.logger = logger
	}
}

// WithEncryptionKey sets the 32-byte AES-256 key used when encryption is
// enabled with [Generator.SetEncryption]. The key is never logged and never
// appears in error messages.
func WithEncryptionKey(key []byte) Option {
	return func(c *generatorConfig) {
		c.key = key
	}
}

// newHTTPClient builds the default transport used when none is injected.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
