package docgen

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a generated document and provides helpers for common output
// forms such as raw bytes, base64 encoding, and streaming readers.
//
// A Result is returned by every generation method. The payload is the
// service's response body verbatim — the library never parses or transcodes
// it. It is safe to call the methods multiple times; the underlying data is
// never modified.
type Result struct {
	data []byte
}

// Bytes returns the raw document content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the document encoded as a standard base64 string (RFC 4648).
// This is useful for embedding in JSON payloads or uploading to services
// that accept base64-encoded content.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the document content.
// This is suitable for streaming uploads to cloud storage or any API that
// accepts an [io.Reader].
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full document content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the document to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the document in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
