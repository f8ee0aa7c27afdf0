package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const (
	propertiesKey           = "properties"
	additionalPropertiesKey = "additionalProperties"
	typeKey                 = "type"
	itemsKey                = "items"
)

// Generate reflects T into an inlined JSON Schema document.
// Objects are closed: additionalProperties is false at every level.
func Generate[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	s := reflector.Reflect(v)

	b, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("schema: unmarshal: %w", err)
	}
	closeObjects(m)
	return m, nil
}

// MustGenerate is Generate for package-level declarations.
func MustGenerate[T any]() map[string]any {
	m, err := Generate[T]()
	if err != nil {
		panic(err)
	}
	return m
}

func closeObjects(s map[string]any) {
	if t, ok := s[typeKey].(string); ok && t == "object" {
		s[additionalPropertiesKey] = false
	}

	if properties, ok := s[propertiesKey].(map[string]any); ok {
		for _, prop := range properties {
			if propMap, ok := prop.(map[string]any); ok {
				closeObjects(propMap)
			}
		}
	}

	if items, ok := s[itemsKey].(map[string]any); ok {
		closeObjects(items)
	}
}
