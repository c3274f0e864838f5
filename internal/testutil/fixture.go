package testutil

import (
	"os"
	"testing"
)

// Doc wraps element markup in a root <node> element, the shape most parser
// tests need.
func Doc(body string) string {
	return "<node>" + body + "</node>"
}

// InterfaceDoc wraps member markup in a root node holding one interface
// named com.example.Test.
func InterfaceDoc(body string) string {
	return Doc(`<interface name="com.example.Test">` + body + `</interface>`)
}

// ReadFile reads a testdata file, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	return data
}
