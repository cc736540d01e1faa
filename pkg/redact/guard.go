package redact

import (
	"fmt"
	"regexp"
)

// guardPatterns are known prompt-injection markers. Compiled once at
// package init; an LLM payload matching any of them is rejected before
// the call is made.
var guardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(prior|previous|above)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+(a|an|the)\s`),
	regexp.MustCompile(`(?i)\bact\s+as\s+(a\s+)?(system|root|admin|developer)\b`),
	regexp.MustCompile(`(?i)<\s*/?\s*(system|assistant)\s*>`),
	regexp.MustCompile(`(?i)\bDAN\s+mode\b`),
	regexp.MustCompile(`(?i)\bjailbreak\b`),
	regexp.MustCompile(`(?i)\bdeveloper\s+mode\s+enabled\b`),
	regexp.MustCompile(`(?i)reveal\s+(your\s+)?(system\s+)?prompt`),
	regexp.MustCompile(`(?i)\bBEGIN\s+SYSTEM\s+PROMPT\b`),
}

// GuardError reports a rejected payload. Treated upstream as an LLM
// failure (the caller falls back deterministically).
type GuardError struct {
	Pattern string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("prompt guard rejected payload (pattern %q)", e.Pattern)
}

// Guard scans LLM-bound payloads for injection patterns.
type Guard struct {
	enabled bool
}

// NewGuard creates a prompt guard. Disabling is only permitted in
// non-production environments; the config layer enforces that.
func NewGuard(enabled bool) *Guard {
	return &Guard{enabled: enabled}
}

// Check returns a *GuardError if the payload contains a known injection
// pattern, nil otherwise.
func (g *Guard) Check(payload string) error {
	if !g.enabled {
		return nil
	}
	for _, p := range guardPatterns {
		if p.MatchString(payload) {
			return &GuardError{Pattern: p.String()}
		}
	}
	return nil
}
