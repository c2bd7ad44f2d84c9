package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reHTTPURL = regexp.MustCompile(`\bhttp://[A-Za-z0-9.-]+(?::\d+)?(?:/[^\s"'` + "`" + `<>)]*)?`)
	// loopback, emulator hosts, and XML namespace URIs are not transport
	reHTTPBenign   = regexp.MustCompile(`^http://(?:localhost|127\.0\.0\.1|10\.0\.2\.2|10\.0\.3\.2|0\.0\.0\.0|www\.w3\.org|schemas\.|xmlns\.|ns\.adobe\.com)`)
	reWSURL        = regexp.MustCompile(`\bws://[A-Za-z0-9.-]+(?::\d+)?(?:/[^\s"'` + "`" + `<>)]*)?`)
	reWSBenign     = regexp.MustCompile(`^ws://(?:localhost|127\.0\.0\.1|10\.0\.2\.2)`)
	reTLSDisabled  = regexp.MustCompile(`rejectUnauthorized\s*:\s*false|NSAllowsArbitraryLoads|trustAllCerts|allowInvalidCertificates\s*:\s*true`)
	reCertPinCheck = regexp.MustCompile(`(?i)sslPinning\s*:\s*(?:false|null|undefined)|disableSSLPinning|certificatePinning\s*:\s*false`)
)

// networkRules flags cleartext transport and weakened TLS validation.
func networkRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "cleartext_http_url",
			Name:    "Cleartext HTTP URL",
			Level:   types.SevMed,
			Pattern: reHTTPURL,
			Exclude: reHTTPBenign,
			Note:    "cleartext http:// endpoint referenced in bundle",
		},
		&Rule{
			RuleID:  "cleartext_websocket_url",
			Name:    "Cleartext WebSocket URL",
			Level:   types.SevMed,
			Pattern: reWSURL,
			Exclude: reWSBenign,
			Note:    "cleartext ws:// endpoint referenced in bundle",
		},
		&Rule{
			RuleID:  "tls_verification_disabled",
			Name:    "TLS verification disabled",
			Level:   types.SevHigh,
			Pattern: reTLSDisabled,
			Note:    "TLS certificate validation disabled or arbitrary loads allowed",
		},
		&Rule{
			RuleID:  "ssl_pinning_disabled",
			Name:    "SSL pinning disabled",
			Level:   types.SevHigh,
			Pattern: reCertPinCheck,
			Note:    "certificate pinning explicitly disabled",
		},
	}
}
