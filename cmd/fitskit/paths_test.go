package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestResolveOut(t *testing.T) {
	t.Run("creates parent directory", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "nested", "out.fits")
		got, err := resolveOut(outPath, false)
		if err != nil {
			t.Fatalf("resolveOut returned error: %v", err)
		}
		if got != filepath.Clean(outPath) {
			t.Fatalf("unexpected output path: got %q want %q", got, filepath.Clean(outPath))
		}
		if _, err := os.Stat(filepath.Dir(got)); err != nil {
			t.Fatalf("expected output directory to exist: %v", err)
		}
	})

	t.Run("existing file needs force", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.fits")
		if err := os.WriteFile(outPath, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := resolveOut(outPath, false); !errors.Is(err, errOutputExists) {
			t.Fatalf("expected errOutputExists, got %v", err)
		}
		if _, err := resolveOut(outPath, true); err != nil {
			t.Fatalf("force should allow overwrite: %v", err)
		}
	})

	t.Run("directory is rejected", func(t *testing.T) {
		if _, err := resolveOut(t.TempDir(), true); err == nil {
			t.Fatalf("expected error for directory output")
		}
	})

	t.Run("empty is rejected", func(t *testing.T) {
		if _, err := resolveOut("  ", false); err == nil {
			t.Fatalf("expected error for empty output")
		}
	})
}

func TestParseShape(t *testing.T) {
	t.Parallel()

	got, err := parseShape(" 4, 3 ")
	if err != nil {
		t.Fatalf("parseShape returned error: %v", err)
	}
	if !slices.Equal(got, []int{4, 3}) {
		t.Fatalf("shape mismatch: got %v want [4 3]", got)
	}
	for _, bad := range []string{"", "4,x", "4x", "0", "-2,3"} {
		if _, err := parseShape(bad); err == nil {
			t.Fatalf("parseShape(%q) should fail", bad)
		}
	}
}
