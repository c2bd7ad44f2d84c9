package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reOpenAIKey      = regexp.MustCompile(`\bsk-(?:proj-)?[A-Za-z0-9_-]{20,}\b`)
	reOpenAINotOurs  = regexp.MustCompile(`^sk-ant-`)
	reAnthropicKey   = regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{24,}\b`)
	reAWSAccessKey   = regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`)
	reGoogleAPIKey   = regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{35}\b`)
	reGitHubToken    = regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`)
	reStripeLiveKey  = regexp.MustCompile(`\b[sr]k_live_[0-9a-zA-Z]{24,}\b`)
	reSlackToken     = regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z-]{10,}\b`)
	reSendGridKey    = regexp.MustCompile(`\bSG\.[A-Za-z0-9_-]{22}\.[A-Za-z0-9_-]{43}\b`)
	reTwilioSID      = regexp.MustCompile(`\bAC[0-9a-f]{32}\b`)
	reJWT            = regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\b`)
	rePrivateKey     = regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`)
	rePasswordAssign = regexp.MustCompile(`(?i)["']?(?:password|passwd|pwd)["']?\s*[:=]\s*["'][^"']{6,}["']`)
	rePasswordNoise  = regexp.MustCompile(`(?i)[:=]\s*["'](?:\$\{|\*{3,}|<[^>]*>|%s|process\.env)`)
)

// secretRules covers known credential formats. The entropy detector closes the
// gap for secrets with no recognizable prefix.
func secretRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "openai_api_key",
			Name:    "OpenAI API key",
			Level:   types.SevCritical,
			Pattern: reOpenAIKey,
			Exclude: reOpenAINotOurs,
			Note:    "hard-coded OpenAI API key in bundle",
		},
		&Rule{
			RuleID:  "anthropic_api_key",
			Name:    "Anthropic API key",
			Level:   types.SevCritical,
			Pattern: reAnthropicKey,
			Note:    "hard-coded Anthropic API key in bundle",
		},
		&Rule{
			RuleID:  "aws_access_key",
			Name:    "AWS access key ID",
			Level:   types.SevCritical,
			Pattern: reAWSAccessKey,
			Note:    "AWS access key ID embedded in bundle",
		},
		&Rule{
			RuleID:  "google_api_key",
			Name:    "Google API key",
			Level:   types.SevHigh,
			Pattern: reGoogleAPIKey,
			Note:    "Google API key embedded in bundle",
		},
		&Rule{
			RuleID:  "github_token",
			Name:    "GitHub token",
			Level:   types.SevCritical,
			Pattern: reGitHubToken,
			Note:    "GitHub personal access token in bundle",
		},
		&Rule{
			RuleID:  "stripe_live_key",
			Name:    "Stripe live key",
			Level:   types.SevCritical,
			Pattern: reStripeLiveKey,
			Note:    "Stripe live-mode key in bundle",
		},
		&Rule{
			RuleID:  "slack_token",
			Name:    "Slack token",
			Level:   types.SevHigh,
			Pattern: reSlackToken,
			Note:    "Slack token in bundle",
		},
		&Rule{
			RuleID:  "sendgrid_api_key",
			Name:    "SendGrid API key",
			Level:   types.SevCritical,
			Pattern: reSendGridKey,
			Note:    "SendGrid API key in bundle",
		},
		&Rule{
			RuleID:  "twilio_account_sid",
			Name:    "Twilio account SID",
			Level:   types.SevHigh,
			Pattern: reTwilioSID,
			Note:    "Twilio account SID in bundle",
		},
		&Rule{
			RuleID:  "jwt_token",
			Name:    "JSON Web Token",
			Level:   types.SevMed,
			Pattern: reJWT,
			Note:    "JWT literal in bundle; tokens in shipped code are replayable",
		},
		&Rule{
			RuleID:  "private_key_block",
			Name:    "Private key block",
			Level:   types.SevCritical,
			Pattern: rePrivateKey,
			Note:    "PEM private key material in bundle",
		},
		&Rule{
			RuleID:  "hardcoded_password",
			Name:    "Hard-coded password",
			Level:   types.SevHigh,
			Pattern: rePasswordAssign,
			Exclude: rePasswordNoise,
			Note:    "password literal assigned in bundle",
		},
		&entropyDetector{},
	}
}
