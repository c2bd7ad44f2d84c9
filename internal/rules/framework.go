package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reWebViewInjection = regexp.MustCompile(`injectedJavaScript(?:BeforeContentLoaded)?\s*[:=]`)
	reWebViewFileURL   = regexp.MustCompile(`allowFileAccess\s*[:=]\s*(?:true|!0)|allowUniversalAccessFromFileURLs\s*[:=]\s*(?:true|!0)`)
	reClipboardWrite   = regexp.MustCompile(`Clipboard\.setString(?:Async)?\s*\(`)
	reDebugFlag        = regexp.MustCompile(`__DEV__\s*=\s*(?:true|!0)|debuggerHost|REACT_DEBUGGER`)
	reExposedEnvBlob   = regexp.MustCompile(`(?:EXPO_PUBLIC|REACT_APP|NEXT_PUBLIC)_[A-Z0-9_]*(?:SECRET|TOKEN|KEY|PASSWORD)[A-Z0-9_]*`)
)

// frameworkRules covers React Native / Expo / Next specific surfaces.
func frameworkRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "webview_injected_js",
			Name:    "WebView JavaScript injection",
			Level:   types.SevLow,
			Pattern: reWebViewInjection,
			Note:    "WebView injectedJavaScript present; injected code runs with page privileges",
		},
		&Rule{
			RuleID:  "webview_file_access",
			Name:    "WebView file access enabled",
			Level:   types.SevMed,
			Pattern: reWebViewFileURL,
			Note:    "WebView file URL access enabled; local files become scriptable",
		},
		&Rule{
			RuleID:  "clipboard_sensitive_write",
			Name:    "Sensitive clipboard write",
			Level:   types.SevLow,
			Pattern: reClipboardWrite,
			Context: reSensitiveNearby,
			Note:    "sensitive value copied to clipboard; clipboard is world-readable on most platforms",
		},
		&Rule{
			RuleID:  "debug_mode_artifact",
			Name:    "Debug mode artifact",
			Level:   types.SevLow,
			Pattern: reDebugFlag,
			Note:    "debug flag or debugger host present in release bundle",
		},
		&Rule{
			RuleID:  "public_env_secret",
			Name:    "Secret in public env var",
			Level:   types.SevHigh,
			Pattern: reExposedEnvBlob,
			Note:    "secret-named variable uses a public env prefix, which inlines it into the bundle",
		},
	}
}
