package docgen

import "fmt"

// Kind classifies a failure returned by a [Generator].
type Kind int

const (
	// KindValidation indicates an unknown or wrong-typed generation option.
	KindValidation Kind = iota + 1
	// KindSerialization indicates the request message could not be encoded.
	KindSerialization
	// KindConfiguration indicates missing or unusable generator configuration,
	// such as an absent encryption key when encryption is enabled.
	KindConfiguration
	// KindCryptoUnavailable indicates the cipher could not be initialized or
	// the random IV could not be drawn.
	KindCryptoUnavailable
	// KindUpstream indicates the document service answered with a non-200 status.
	KindUpstream
	// KindTransport indicates a network-level failure before a status was received.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSerialization:
		return "serialization"
	case KindConfiguration:
		return "configuration"
	case KindCryptoUnavailable:
		return "crypto unavailable"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	}
	return "unknown"
}

// Error is the single error type returned by every generation call.
// Inspect [Error.Kind] to discriminate failure classes; the original cause,
// when there is one, is available through [errors.Unwrap].
//
// Upstream failures never carry the service's response body, only the
// status code.
type Error struct {
	Kind Kind

	// StatusCode is the HTTP status of the upstream response.
	// It is only set when Kind is [KindUpstream].
	StatusCode int

	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream {
		return fmt.Sprintf("docgen: %s (status %d)", e.msg, e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("docgen: %s: %v", e.msg, e.cause)
	}
	return "docgen: " + e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}
