package upstream

import (
	"emotiai/pkg/googlenl"
	"emotiai/pkg/huggingface"
	"emotiai/pkg/openrouter"
	"emotiai/pkg/schema"
	"emotiai/pkg/textrazor"
)

// Contract names one provider payload and its JSON Schema.
type Contract struct {
	Provider string         `json:"provider"`
	Payload  string         `json:"payload"`
	Schema   map[string]any `json:"schema"`
}

// Contracts returns the schemas of the provider payloads the adapters decode.
func Contracts() ([]Contract, error) {
	type entry struct {
		provider, payload string
		gen               func() (map[string]any, error)
	}
	entries := []entry{
		{providerHuggingFace, "classification", schema.Generate[huggingface.Classification]},
		{providerTextRazor, "analyze_response", schema.Generate[textrazor.AnalyzeResponse]},
		{providerGoogle, "annotation", schema.Generate[googlenl.Annotation]},
		{"openrouter", "message", schema.Generate[openrouter.Message]},
		{"openrouter", "response", schema.Generate[openrouter.Response]},
	}

	out := make([]Contract, 0, len(entries))
	for _, e := range entries {
		s, err := e.gen()
		if err != nil {
			return nil, err
		}
		out = append(out, Contract{Provider: e.provider, Payload: e.payload, Schema: s})
	}
	return out, nil
}
