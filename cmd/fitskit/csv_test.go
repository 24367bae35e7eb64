package main

import (
	"strings"
	"testing"

	"github.com/samcharles93/fitskit/pkg/fits"
)

func TestReadCSVColumnsTypesByParsing(t *testing.T) {
	t.Parallel()

	in := "id, flux, name, mixed\n1, 1.5, alpha, 3\n22, 2, beta, x\n"
	cols, err := readCSVColumns(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readCSVColumns returned error: %v", err)
	}
	want := []struct {
		name string
		kind fits.Kind
	}{
		{"id", fits.KindInt64},
		{"flux", fits.KindFloat64},
		{"name", fits.KindString},
		{"mixed", fits.KindString},
	}
	if len(cols) != len(want) {
		t.Fatalf("column count mismatch: got %d want %d", len(cols), len(want))
	}
	for i, w := range want {
		if cols[i].Name != w.name || cols[i].Kind() != w.kind {
			t.Fatalf("column %d mismatch: got %s/%s want %s/%s", i, cols[i].Name, cols[i].Kind(), w.name, w.kind)
		}
		if cols[i].Len() != 2 {
			t.Fatalf("column %d rows: got %d want 2", i, cols[i].Len())
		}
	}
	if got := cols[1].Cell(1); got != "2" {
		t.Fatalf("flux cell mismatch: got %q want %q", got, "2")
	}
}

func TestReadCSVColumnsErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":       "",
		"header only": "a,b\n",
		"ragged":      "a,b\n1\n",
	}
	for name, in := range cases {
		if _, err := readCSVColumns(strings.NewReader(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
