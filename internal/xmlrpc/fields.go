package xmlrpc

// Field accessors for projected records. Missing or mistyped fields
// fall back to the kind's default so record consumers never branch on
// presence.

func GetString(record map[string]interface{}, name string) string {
	if v, ok := record[name].(string); ok {
		return v
	}
	return ""
}

func GetInt(record map[string]interface{}, name string) int {
	switch v := record[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func GetFloat(record map[string]interface{}, name string) float64 {
	switch v := record[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func GetBool(record map[string]interface{}, name string) bool {
	if v, ok := record[name].(bool); ok {
		return v
	}
	return false
}
