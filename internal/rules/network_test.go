package rules

import "testing"

func TestCleartextHTTPURL(t *testing.T) {
	d := detectorByID(t, "cleartext_http_url")
	if fs := d.Detect(`fetch("http://api.example.com/v1/users")`); len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	for _, benign := range []string{
		`fetch("http://localhost:3000/dev")`,
		`xmlns="http://www.w3.org/2000/svg"`,
		`fetch("http://10.0.2.2:8081/bundle")`,
	} {
		if fs := d.Detect(benign); len(fs) != 0 {
			t.Fatalf("benign URL flagged: %s", benign)
		}
	}
}

func TestTLSVerificationDisabled(t *testing.T) {
	if fs := detectorByID(t, "tls_verification_disabled").Detect(`agent:new https.Agent({rejectUnauthorized: false})`); len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
}

func TestStorageRulesNeedSensitiveContext(t *testing.T) {
	d := detectorByID(t, "async_storage_sensitive")
	if fs := d.Detect(`AsyncStorage.setItem("authToken", token)`); len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	if fs := d.Detect(`AsyncStorage.setItem("theme", "dark")`); len(fs) != 0 {
		t.Fatalf("benign storage write flagged")
	}
}
