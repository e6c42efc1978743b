package tools

// Typed accessors for validated argument maps. Validation has already
// enforced the types, so absent just means the optional arg was not sent.

func ArgString(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

func ArgInt(args map[string]interface{}, name string) (int64, bool) {
	if v, ok := args[name].(int64); ok {
		return v, true
	}
	return 0, false
}

func ArgBool(args map[string]interface{}, name string) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return false
}
