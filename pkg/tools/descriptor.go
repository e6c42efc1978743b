package tools

import (
	"context"
)

type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

// Parameter describes one argument a tool accepts.
type Parameter struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     interface{} // applied when the argument is absent
	Enum        []string    // allowed values for string parameters
}

// Handler runs the tool. Arguments arrive validated against the descriptor,
// with defaults already applied.
type Handler func(ctx context.Context, args map[string]interface{}) Result

// Descriptor declares a tool: its name, what it does, and the schema of its
// arguments.
type Descriptor struct {
	Name        string
	Description string
	Parameters  []Parameter
	Handler     Handler
}
