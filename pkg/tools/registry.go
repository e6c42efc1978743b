package tools

import (
	"context"
	"fmt"
	"math"
)

// Registry holds the tool catalog and validates arguments before dispatch.
// Invoke never panics and never returns a Go error: every failure mode is a
// failure Result so the caller can always report something to the user.
type Registry struct {
	tools map[string]*Descriptor
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Descriptor),
	}
}

func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if d.Handler == nil {
		return fmt.Errorf("tool %s has no handler", d.Name)
	}
	if _, exists := r.tools[d.Name]; exists {
		return fmt.Errorf("tool %s already registered", d.Name)
	}
	desc := d
	r.tools[d.Name] = &desc
	r.order = append(r.order, d.Name)
	return nil
}

func (r *Registry) MustRegister(descriptors ...Descriptor) {
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.tools[name]
	return d, ok
}

// List returns descriptors in registration order.
func (r *Registry) List() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	for i, name := range r.order {
		out[i] = r.tools[name]
	}
	return out
}

// Invoke validates args against the descriptor, applies defaults, and runs
// the handler. A panicking handler is converted into a failure Result.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (res Result) {
	d, ok := r.tools[name]
	if !ok {
		return Fail("unknown tool: %s", name)
	}

	validated, err := validateArgs(d, args)
	if err != nil {
		return Fail("%s: %v", name, err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = Fail("%s: tool panicked: %v", name, rec)
		}
	}()

	return d.Handler(ctx, validated)
}

func validateArgs(d *Descriptor, args map[string]interface{}) (map[string]interface{}, error) {
	known := make(map[string]Parameter, len(d.Parameters))
	for _, p := range d.Parameters {
		known[p.Name] = p
	}

	for name := range args {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown argument %q", name)
		}
	}

	validated := make(map[string]interface{}, len(d.Parameters))
	for _, p := range d.Parameters {
		raw, present := args[p.Name]
		if !present || raw == nil {
			if p.Required {
				return nil, fmt.Errorf("missing required argument %q", p.Name)
			}
			if p.Default != nil {
				validated[p.Name] = p.Default
			}
			continue
		}

		value, err := coerce(p, raw)
		if err != nil {
			return nil, err
		}
		validated[p.Name] = value
	}
	return validated, nil
}

// coerce checks a raw JSON-decoded value against the declared type. JSON
// numbers always decode as float64, so integers are accepted when whole.
func coerce(p Parameter, raw interface{}) (interface{}, error) {
	switch p.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q must be a string", p.Name)
		}
		if len(p.Enum) > 0 && !contains(p.Enum, s) {
			return nil, fmt.Errorf("argument %q must be one of %v", p.Name, p.Enum)
		}
		return s, nil
	case TypeInteger:
		switch v := raw.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("argument %q must be an integer", p.Name)
			}
			return int64(v), nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
		return nil, fmt.Errorf("argument %q must be an integer", p.Name)
	case TypeNumber:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
		return nil, fmt.Errorf("argument %q must be a number", p.Name)
	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("argument %q must be a boolean", p.Name)
		}
		return b, nil
	}
	return nil, fmt.Errorf("argument %q has unsupported type %q", p.Name, p.Type)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
