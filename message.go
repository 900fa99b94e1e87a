package docgen

import (
	"encoding/json"
	"fmt"
)

// Output formats and source discriminators understood by the document service.
const (
	outputPNG = "png"
	outputPDF = "pdf"

	sourceURL  = "url"
	sourceHTML = "html"
)

// generationOptions is the closed option set accepted by the service.
// It is produced from the open mapping callers pass in.
type generationOptions struct {
	Decode      bool
	PageOptions map[string]any
	Scenario    *string
}

// normalizeOptions validates the caller-supplied options and fills in
// defaults. Unknown keys and wrong-typed values are rejected before any
// crypto or network work happens.
func normalizeOptions(raw map[string]any) (generationOptions, error) {
	opts := generationOptions{PageOptions: map[string]any{}}

	for key, value := range raw {
		switch key {
		case "decode":
			b, ok := value.(bool)
			if !ok {
				return opts, newError(KindValidation, fmt.Sprintf("option %q must be a bool", key))
			}
			opts.Decode = b
		case "pageOptions":
			m, ok := value.(map[string]any)
			if !ok {
				return opts, newError(KindValidation, fmt.Sprintf("option %q must be a map", key))
			}
			if m != nil {
				opts.PageOptions = m
			}
		case "scenario":
			s, ok := value.(string)
			if !ok {
				return opts, newError(KindValidation, fmt.Sprintf("option %q must be a string", key))
			}
			opts.Scenario = &s
		default:
			return opts, newError(KindValidation, fmt.Sprintf("unknown option %q", key))
		}
	}
	return opts, nil
}

// buildMessage assembles and serializes the JSON request message. Exactly
// one of the url/html discriminators is present, carried by sourceKey.
func buildMessage(outputType, sourceKey, sourceValue string, opts generationOptions) ([]byte, error) {
	msg := map[string]any{
		"type":        outputType,
		sourceKey:     sourceValue,
		"decode":      opts.Decode,
		"pageOptions": opts.PageOptions,
		"scenario":    opts.Scenario,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, wrapError(KindSerialization, "encoding request message", err)
	}
	return data, nil
}
