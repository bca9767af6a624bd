package infrastructure

import (
	"strings"

	"farmwatch.app/internal/ports"
)

// RedactedValue replaces the value of sensitive log fields
const RedactedValue = "****"

var sensitiveKeys = []string{"password", "cookie", "token", "secret", "authorization"}

// IsSensitiveKey reports whether a log field key may carry a credential
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}

// Redact returns fields with every sensitive value masked
func Redact(fields []ports.Field) []ports.Field {
	redacted := make([]ports.Field, len(fields))
	for i, field := range fields {
		if IsSensitiveKey(field.Key) {
			field.Value = RedactedValue
		}
		redacted[i] = field
	}
	return redacted
}
