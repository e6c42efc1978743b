package dto

import "github.com/invopop/jsonschema"

type InvokeToolRequest struct {
	Args map[string]interface{} `json:"args"`
}

type ToolDescriptorResponse struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}
