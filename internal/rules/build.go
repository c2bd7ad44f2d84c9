package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reEvalCall     = regexp.MustCompile(`\beval\s*\(`)
	reFunctionCtor = regexp.MustCompile(`\bnew\s+Function\s*\(`)
	reTimerString  = regexp.MustCompile(`\bset(?:Timeout|Interval)\s*\(\s*["']`)
	reDocWrite     = regexp.MustCompile(`\bdocument\.write(?:ln)?\s*\(`)
	reSourceMapURL = regexp.MustCompile(`//[#@]\s*sourceMappingURL\s*=\s*\S+`)
	reDevServer    = regexp.MustCompile(`\bhttps?://(?:localhost|127\.0\.0\.1|10\.0\.2\.2):(?:8081|8097|19000|19001|3000)\b`)
	reConsoleLog   = regexp.MustCompile(`\bconsole\.(?:log|debug|info|warn)\s*\(`)
)

// buildRules flags dynamic-execution constructs and build artifacts that
// should not ship in a release bundle.
func buildRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "eval_usage",
			Name:    "eval() usage",
			Level:   types.SevMed,
			Pattern: reEvalCall,
			Note:    "eval() executes arbitrary strings as code",
		},
		&Rule{
			RuleID:  "function_constructor",
			Name:    "Function constructor",
			Level:   types.SevMed,
			Pattern: reFunctionCtor,
			Note:    "new Function() executes arbitrary strings as code",
		},
		&Rule{
			RuleID:  "string_timer",
			Name:    "String argument to timer",
			Level:   types.SevLow,
			Pattern: reTimerString,
			Note:    "setTimeout/setInterval with a string argument is implicit eval",
		},
		&Rule{
			RuleID:  "document_write",
			Name:    "document.write usage",
			Level:   types.SevLow,
			Pattern: reDocWrite,
			Note:    "document.write enables markup injection in web views",
		},
		&Rule{
			RuleID:  "source_map_reference",
			Name:    "Source map reference",
			Level:   types.SevInfo,
			Pattern: reSourceMapURL,
			Note:    "source map URL shipped with bundle; original sources may be recoverable",
		},
		&Rule{
			RuleID:  "dev_server_url",
			Name:    "Development server URL",
			Level:   types.SevLow,
			Pattern: reDevServer,
			Note:    "development server endpoint referenced in bundle",
		},
		&Rule{
			RuleID:  "console_sensitive_log",
			Name:    "Sensitive console logging",
			Level:   types.SevLow,
			Pattern: reConsoleLog,
			Context: reSensitiveNearby,
			Note:    "console logging near sensitive values; device logs are readable by other tooling",
		},
	}
}
