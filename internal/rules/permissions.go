package rules

import (
	"regexp"

	"github.com/adnxy/react-native-lupin/internal/types"
)

var (
	reDangerousPermission = regexp.MustCompile(`android\.permission\.(?:READ_CONTACTS|WRITE_CONTACTS|READ_SMS|SEND_SMS|RECORD_AUDIO|CAMERA|ACCESS_FINE_LOCATION|ACCESS_BACKGROUND_LOCATION|READ_CALL_LOG|READ_PHONE_STATE)`)
	reGeolocationUse      = regexp.MustCompile(`navigator\.geolocation\.(?:getCurrentPosition|watchPosition)\s*\(`)
	reContactsModule      = regexp.MustCompile(`react-native-contacts|expo-contacts`)
)

// permissionRules surfaces privacy-sensitive capability usage so reviewers can
// confirm each permission is intentional.
func permissionRules() []Detector {
	return []Detector{
		&Rule{
			RuleID:  "dangerous_android_permission",
			Name:    "Dangerous Android permission",
			Level:   types.SevLow,
			Pattern: reDangerousPermission,
			Note:    "dangerous-class Android permission referenced in bundle",
		},
		&Rule{
			RuleID:  "geolocation_usage",
			Name:    "Geolocation usage",
			Level:   types.SevInfo,
			Pattern: reGeolocationUse,
			Note:    "geolocation API used; confirm purpose strings and consent flow",
		},
		&Rule{
			RuleID:  "contacts_module_usage",
			Name:    "Contacts module usage",
			Level:   types.SevInfo,
			Pattern: reContactsModule,
			Note:    "contacts access module referenced in bundle",
		},
	}
}
