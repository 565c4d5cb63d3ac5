package redact

import (
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

var secretPatterns = []*regexp.Regexp{
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._~+/=-]{8,}`),
	// JWTs
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// GitHub tokens, classic and fine-grained
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`),
	// JSON fields: "token": "...", "password": "..."
	regexp.MustCompile(`(?i)"(access_token|token|secret|password|api[_-]?key)"\s*:\s*"[^"]{4,}"`),
	// Form and env syntax: token=..., api_key: ...
	regexp.MustCompile(`(?i)\b(access_token|token|secret|password|api[_-]?key)\s*[:=]\s*[^\s&"',;]{8,}`),
}

// Secrets replaces detected secrets in text with [REDACTED]. Every non-empty
// literal in known is replaced as well.
func Secrets(text string, known ...string) string {
	result := text
	for _, k := range known {
		if k != "" {
			result = strings.ReplaceAll(result, k, placeholder)
		}
	}
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}
