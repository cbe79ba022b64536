package testutils

import (
	"os"
	"strings"
	"testing"
)

// Variables that point tests at external services. Tests needing one of them
// skip when it is unset.
const (
	DatabaseURLEnv = "DATABASE_URL"
	RedisAddrEnv   = "REDIS_ADDR"
)

// LookupEnv returns the trimmed value of name and whether it is non-empty.
func LookupEnv(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	return v, v != ""
}

// RequireEnv returns the value of name, skipping t when it is unset.
func RequireEnv(t testing.TB, name string) string {
	t.Helper()
	v, ok := LookupEnv(name)
	if !ok {
		t.Skipf("%s not set; skipping test that needs an external service", name)
	}
	return v
}
