package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reBasicAuthHeader = regexp.MustCompile(`(?i)authorization["']?\s*[:=]\s*["']Basic\s+[A-Za-z0-9+/=]{8,}["']`)
	reBearerLiteral   = regexp.MustCompile(`(?i)authorization["']?\s*[:=]\s*["']Bearer\s+[A-Za-z0-9._=-]{20,}["']`)
	reBasicAuthInURL  = regexp.MustCompile(`\bhttps?://[^\s"'/@]+:[^\s"'/@]+@[A-Za-z0-9.-]+`)
	reTemplatedCreds  = regexp.MustCompile(`\$\{|%s|\bprocess\.env\b`)
)

// authRules flags credentials baked into request construction.
func authRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "basic_auth_header",
			Name:    "Hard-coded Basic auth header",
			Level:   types.SevHigh,
			Pattern: reBasicAuthHeader,
			Exclude: reTemplatedCreds,
			Note:    "Basic authorization header with literal credentials",
		},
		&Rule{
			RuleID:  "bearer_token_literal",
			Name:    "Hard-coded bearer token",
			Level:   types.SevHigh,
			Pattern: reBearerLiteral,
			Exclude: reTemplatedCreds,
			Note:    "bearer token literal in authorization header",
		},
		&Rule{
			RuleID:  "credentials_in_url",
			Name:    "Credentials in URL",
			Level:   types.SevHigh,
			Pattern: reBasicAuthInURL,
			Exclude: reTemplatedCreds,
			Note:    "user:password credentials embedded in a URL",
		},
	}
}
