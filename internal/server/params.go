package server

// MCP arguments arrive as a map decoded from JSON, so numbers are float64.
// These helpers normalize extraction with defaults.

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func hasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}
