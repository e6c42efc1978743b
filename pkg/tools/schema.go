package tools

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// InputSchema renders the descriptor's parameters as a JSON Schema object,
// the format LLM tool-calling APIs and the HTTP surface both expect.
func (d *Descriptor) InputSchema() *jsonschema.Schema {
	properties := orderedmap.New[string, *jsonschema.Schema]()
	var required []string

	for _, p := range d.Parameters {
		prop := &jsonschema.Schema{
			Type:        string(p.Type),
			Description: p.Description,
		}
		if len(p.Enum) > 0 {
			for _, v := range p.Enum {
				prop.Enum = append(prop.Enum, v)
			}
		}
		if p.Default != nil {
			prop.Default = p.Default
		}
		properties.Set(p.Name, prop)

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           properties,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}
