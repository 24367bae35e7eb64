package fits

import (
	"fmt"
	"sync"
	"testing"
)

// captureLogger records every message for assertions.
type captureLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *captureLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprint(append([]any{msg}, args...)...))
}

func (l *captureLogger) Warn(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprint(append([]any{msg}, args...)...))
}

func assertSealed(t *testing.T, h *Header) {
	t.Helper()
	if h.Len()%RecordsPerBlock != 0 {
		t.Fatalf("header has %d records, not a multiple of %d", h.Len(), RecordsPerBlock)
	}
	if !h.Sealed() {
		t.Fatalf("header is not sealed")
	}
	for i, r := range h.Records {
		if len(r.String()) != RecordSize {
			t.Fatalf("record %d length %d", i, len(r.String()))
		}
	}
}

func assertKeywords(t *testing.T, h *Header, want ...string) {
	t.Helper()
	got := h.Keywords()
	if len(got) < len(want) {
		t.Fatalf("keywords: got %v want prefix %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("keyword %d: got %q want %q (all %v)", i, got[i], k, got)
		}
	}
}

func mustInt(t *testing.T, h *Header, key string) int64 {
	t.Helper()
	v, ok := h.Int(key)
	if !ok {
		t.Fatalf("missing integer keyword %s", key)
	}
	return v
}
