package catalog

import (
	"github.com/invopop/jsonschema"
)

// Generate reflects a Go argument struct into a JSON schema so tool
// definitions stay machine-readable outside Go.
func Generate[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var v T
	return reflector.Reflect(v)
}
