package templatehelpers

import (
	"strings"
	"time"
)

func TemplateHelpers() map[string]interface{} {
	return map[string]interface{}{
		"formatDate": formatDate,
		"truncate":   truncate,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	cut := strings.TrimSpace(s[:max-3])
	return cut + "..."
}
