// Package docgen is a client for a remote document-generation service that
// renders web pages and HTML fragments to PNG images or PDF documents.
//
// # Generating documents
//
// Create a [Generator] pointing at the service and call one of the four
// entry points:
//
//	g, err := docgen.NewGenerator("https://docgen.internal")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := g.GeneratePDFFromURL(ctx, "https://example.com", nil)
//	res, err  = g.GeneratePDFFromHTML(ctx, "<h1>Invoice</h1>", nil)
//	res, err  = g.GeneratePNGFromURL(ctx, "https://example.com", nil)
//	res, err  = g.GeneratePNGFromHTML(ctx, "<h1>Banner</h1>", nil)
//
// The options mapping accepts the keys "decode", "pageOptions", and
// "scenario". [PageOptions] builds the pageOptions value from typed fields:
//
//	page := docgen.PageOptions{
//	    Size:        docgen.A4,
//	    Orientation: docgen.Landscape,
//	    Margin:      docgen.UniformMargin(2.0),
//	}
//	res, err := g.GeneratePDFFromURL(ctx, url, map[string]any{
//	    "pageOptions": page.Map(),
//	})
//
// A [Result] gives flexible access to the returned payload:
//
//	res.Bytes()                       // []byte
//	res.Base64()                      // base64 string (RFC 4648)
//	res.Reader()                      // *bytes.Reader
//	res.WriteToFile("out.pdf", 0o644) // write to disk
//
// # Encrypted transport
//
// With a 32-byte key configured, messages can be AES-256-CTR encrypted and
// posted to the service's /encrypted endpoint:
//
//	g, err := docgen.NewGenerator(baseURI, docgen.WithEncryptionKey(key))
//	g.SetEncryption(true)
//
// The wire format is "hex(iv):hex(ciphertext)" with a fresh random IV per
// message.
//
// # Errors
//
// Every failure is returned as an [*Error] whose [Kind] discriminates
// validation, serialization, configuration, crypto, upstream, and transport
// failures:
//
//	var dgErr *docgen.Error
//	if errors.As(err, &dgErr) && dgErr.Kind == docgen.KindUpstream {
//	    log.Printf("service answered %d", dgErr.StatusCode)
//	}
//
// Calls are never retried; each invocation is a single request/response
// cycle.
package docgen
