package core_test

import (
	"fmt"
	"os"

	"github.com/adnxy/react-native-lupin/pkg/core"
)

// ExampleScan demonstrates scanning a single bundle from memory.
func ExampleScan() {
	bundle := []byte(`fetch("http://internal.example.com/api");`)

	rep, errs := core.Scan("main.jsbundle", bundle, core.Options{})
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, "detector error:", err)
	}

	for _, f := range rep.Findings {
		fmt.Printf("%s %s @%d\n", f.Severity, f.Detector, f.Position)
	}
	// Output:
	// medium cleartext_http_url @7
}
