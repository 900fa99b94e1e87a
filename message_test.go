package docgen

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizeOptions_Defaults(t *testing.T) {
	opts, err := normalizeOptions(nil)
	if err != nil {
		t.Fatalf("normalizeOptions(nil): %v", err)
	}
	if opts.Decode {
		t.Error("decode should default to false")
	}
	if opts.PageOptions == nil || len(opts.PageOptions) != 0 {
		t.Errorf("pageOptions should default to an empty map, got %v", opts.PageOptions)
	}
	if opts.Scenario != nil {
		t.Errorf("scenario should default to nil, got %q", *opts.Scenario)
	}
}

func TestNormalizeOptions_Values(t *testing.T) {
	opts, err := normalizeOptions(map[string]any{
		"decode":      true,
		"pageOptions": map[string]any{"landscape": true},
		"scenario":    "invoice",
	})
	if err != nil {
		t.Fatalf("normalizeOptions: %v", err)
	}
	if !opts.Decode {
		t.Error("decode not carried over")
	}
	if opts.PageOptions["landscape"] != true {
		t.Errorf("pageOptions not carried over: %v", opts.PageOptions)
	}
	if opts.Scenario == nil || *opts.Scenario != "invoice" {
		t.Errorf("scenario not carried over: %v", opts.Scenario)
	}
}

func TestNormalizeOptions_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"unknown key", map[string]any{"quality": "high"}},
		{"decode not bool", map[string]any{"decode": "yes"}},
		{"pageOptions not map", map[string]any{"pageOptions": "wide"}},
		{"pageOptions numeric", map[string]any{"pageOptions": 3}},
		{"scenario not string", map[string]any{"scenario": 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalizeOptions(tc.raw)
			var dgErr *Error
			if !errors.As(err, &dgErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if dgErr.Kind != KindValidation {
				t.Errorf("kind = %v, want validation", dgErr.Kind)
			}
		})
	}
}

func TestBuildMessage_URLDiscriminator(t *testing.T) {
	opts, err := normalizeOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := buildMessage(outputPNG, sourceURL, "https://example.com", opts)
	if err != nil {
		t.Fatalf("buildMessage: %v", err)
	}

	var msg map[string]any
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("message is not valid JSON: %v", err)
	}

	wantKeys := []string{"type", "url", "decode", "pageOptions", "scenario"}
	if len(msg) != len(wantKeys) {
		t.Errorf("message has %d keys, want %d: %v", len(msg), len(wantKeys), msg)
	}
	for _, k := range wantKeys {
		if _, ok := msg[k]; !ok {
			t.Errorf("message is missing key %q", k)
		}
	}
	if msg["scenario"] != nil {
		t.Errorf("scenario = %v, want null", msg["scenario"])
	}
}

func TestBuildMessage_HTMLDiscriminator(t *testing.T) {
	scenario := "report"
	data, err := buildMessage(outputPDF, sourceHTML, "<h1>Hi</h1>", generationOptions{
		Decode:      true,
		PageOptions: map[string]any{"landscape": true},
		Scenario:    &scenario,
	})
	if err != nil {
		t.Fatalf("buildMessage: %v", err)
	}

	var msg map[string]any
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg["type"] != "pdf" || msg["html"] != "<h1>Hi</h1>" {
		t.Errorf("unexpected message: %v", msg)
	}
	if _, ok := msg["url"]; ok {
		t.Error("message contains both discriminators")
	}
	if msg["scenario"] != "report" || msg["decode"] != true {
		t.Errorf("options not merged: %v", msg)
	}
}

func TestBuildMessage_SerializationError(t *testing.T) {
	_, err := buildMessage(outputPDF, sourceURL, "https://example.com", generationOptions{
		PageOptions: map[string]any{"bad": make(chan int)},
	})
	var dgErr *Error
	if !errors.As(err, &dgErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if dgErr.Kind != KindSerialization {
		t.Errorf("kind = %v, want serialization", dgErr.Kind)
	}
}
