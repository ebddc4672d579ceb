package petitions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	reflectschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"petitions/internal/domain"
)

const schemaResource = "petitions.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// PayloadSchema returns the JSON schema of the API response, reflected from
// domain.Petitions. Every record must carry string title and body fields;
// unknown properties are allowed since the API returns many more.
func PayloadSchema() *reflectschema.Schema {
	r := &reflectschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	return r.Reflect(&domain.Petitions{})
}

func payloadValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(PayloadSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshaling schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Decode parses a response body into petitions. The payload is validated
// against PayloadSchema first, so a missing results key or a mistyped field
// fails the whole decode instead of yielding a partial list.
func Decode(data []byte) ([]domain.Petition, error) {
	validator, err := payloadValidator()
	if err != nil {
		return nil, err
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validator.Validate(value); err != nil {
		return nil, fmt.Errorf("unexpected payload shape: %w", err)
	}

	var payload domain.Petitions
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding petitions: %w", err)
	}
	if payload.Results == nil {
		payload.Results = []domain.Petition{}
	}
	return payload.Results, nil
}
