package version

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	t.Parallel()

	if got := shortCommit("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("short commit: got %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("short commit: got %q", got)
	}
}

func TestResolveAlwaysHasVersion(t *testing.T) {
	t.Parallel()

	if Resolve().Version == "" {
		t.Fatal("resolved version is empty")
	}
	if s := String(); s == "" || strings.HasPrefix(s, " ") {
		t.Fatalf("unexpected version string %q", s)
	}
}
