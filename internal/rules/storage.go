package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reAsyncStorageSet = regexp.MustCompile(`AsyncStorage\.(?:setItem|multiSet)\s*\(`)
	reLocalStorageSet = regexp.MustCompile(`localStorage\.setItem\s*\(`)
	reSessionStorage  = regexp.MustCompile(`sessionStorage\.setItem\s*\(`)
	reCookieWrite     = regexp.MustCompile(`document\.cookie\s*=`)
	reSensitiveNearby = regexp.MustCompile(`(?i)(token|secret|password|credential|api[_-]?key|auth|session|jwt|private)`)
)

// storageRules flags sensitive values flowing into unencrypted client storage.
// Each rule is a broad call-site match plus a sensitivity post-filter on the
// surrounding window.
func storageRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "async_storage_sensitive",
			Name:    "Sensitive value in AsyncStorage",
			Level:   types.SevHigh,
			Pattern: reAsyncStorageSet,
			Context: reSensitiveNearby,
			Note:    "sensitive value written to AsyncStorage; it is stored unencrypted on device",
		},
		&Rule{
			RuleID:  "local_storage_sensitive",
			Name:    "Sensitive value in localStorage",
			Level:   types.SevHigh,
			Pattern: reLocalStorageSet,
			Context: reSensitiveNearby,
			Note:    "sensitive value written to localStorage; accessible to any script on the page",
		},
		&Rule{
			RuleID:  "session_storage_sensitive",
			Name:    "Sensitive value in sessionStorage",
			Level:   types.SevMed,
			Pattern: reSessionStorage,
			Context: reSensitiveNearby,
			Note:    "sensitive value written to sessionStorage",
		},
		&Rule{
			RuleID:  "cookie_sensitive_write",
			Name:    "Sensitive cookie write",
			Level:   types.SevMed,
			Pattern: reCookieWrite,
			Context: reSensitiveNearby,
			Note:    "sensitive value written via document.cookie from script",
		},
	}
}
