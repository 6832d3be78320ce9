package service

import (
	"encoding/json"
	"strings"
)

// SplitList normalizes the pros/cons column into a list of strings.
// Older rows store newline or semicolon delimited text, newer rows a JSON
// array; both shapes collapse to the same result here so nothing downstream
// has to type-check.
func SplitList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return cleanList(items)
		}
	}

	separator := "\n"
	if !strings.Contains(trimmed, "\n") && strings.Contains(trimmed, ";") {
		separator = ";"
	}
	return cleanList(strings.Split(trimmed, separator))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
