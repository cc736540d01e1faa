// Package redact prepares state fragments for LLM consumption: PII
// masking, sensitive-key stripping, size/depth capping, and a prompt
// injection guard. Fail-closed: content that cannot be safely processed
// is dropped, never forwarded raw.
package redact

import (
	"fmt"
	"strings"
)

// Limits applied to any payload headed for the LLM.
const (
	MaxStringLength = 50000
	MaxJSONDepth    = 10
	maskedMiddle    = "***"
)

// sensitiveKeys is the denylist of field names removed from prompts and
// stripped from LLM output. Matched case-insensitively as substrings.
var sensitiveKeys = []string{
	"system",
	"instruction",
	"password",
	"secret",
	"token",
}

// MaskCardID collapses a card identifier to its first 4 and last 4
// characters. Short identifiers are fully masked.
func MaskCardID(cardID string) string {
	if len(cardID) <= 8 {
		return maskedMiddle
	}
	return cardID[:4] + maskedMiddle + cardID[len(cardID)-4:]
}

// IsSensitiveKey reports whether a field name matches the denylist.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// StateDigest produces an LLM-safe copy of a state fragment:
//   - card_id values are masked,
//   - card_history is replaced with card_history_count,
//   - denylisted keys are removed,
//   - strings are truncated at MaxStringLength,
//   - nesting beyond MaxJSONDepth is dropped.
//
// The input is never mutated.
func StateDigest(fragment map[string]any) map[string]any {
	out, _ := redactValue(fragment, 0).(map[string]any)
	if out == nil {
		return map[string]any{}
	}
	return out
}

func redactValue(v any, depth int) any {
	if depth > MaxJSONDepth {
		return nil
	}
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if IsSensitiveKey(k) {
				continue
			}
			if k == "card_id" {
				if s, ok := inner.(string); ok {
					out[k] = MaskCardID(s)
					continue
				}
			}
			if k == "card_history" {
				if list, ok := inner.([]any); ok {
					out["card_history_count"] = len(list)
					continue
				}
			}
			if r := redactValue(inner, depth+1); r != nil {
				out[k] = r
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, inner := range val {
			if r := redactValue(inner, depth+1); r != nil {
				out = append(out, r)
			}
		}
		return out
	case string:
		if len(val) > MaxStringLength {
			return val[:MaxStringLength]
		}
		return val
	default:
		return val
	}
}

// SanitizeOutputKeys strips denylisted keys from an LLM-produced map
// (defense against the model echoing injected directives back).
func SanitizeOutputKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if IsSensitiveKey(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// Truncate caps s at n characters, appending a marker when cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s…[truncated]", s[:n])
}
