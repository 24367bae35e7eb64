package fits

import "testing"

func TestInferFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		col  Column
		want string
	}{
		{"integers", NewColumn("a", []int{1, 2, 3}), "I1"},
		{"wide integers", NewColumn("a", []int64{7, -1200}), "I5"},
		{"fixed reals", NewColumn("a", []float64{1.5, 2.25}), "F4.1"},
		{"whole reals", NewColumn("a", []float64{3, 10}), "F2.0"},
		{"exponent float32", NewColumn("a", []float32{1e20, 1}), "E5"},
		{"exponent float64", NewColumn("a", []float64{1e-9}), "D5"},
		{"strings", NewColumn("a", []string{"x", "hello"}), "A5"},
		{"chars", NewCharColumn("a", []rune{'x', 'y'}), "A1"},
		{"logical", NewColumn("a", []bool{true, false}), "X1"},
		{"empty", NewColumn("a", []float64{}), "F0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := InferFormat(tc.col).Token(); got != tc.want {
				t.Fatalf("format: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestInferFormatSamplesFirstRowOnly(t *testing.T) {
	t.Parallel()

	// Row 1 renders as "1e+21"; the code is still decided by row 0.
	f := InferFormat(NewColumn("flux", []float64{1.5, 1e21}))
	if f.Code != 'F' {
		t.Fatalf("code: got %q want F", f.Code)
	}
	if f.Width != 5 {
		t.Fatalf("width must scan every row: got %d want 5", f.Width)
	}
	if f.Decimals != 1 {
		t.Fatalf("decimals from row 0: got %d want 1", f.Decimals)
	}

	// The reverse: row 0 is exponential, so the column stays D.
	f = InferFormat(NewColumn("flux", []float64{1e21, 1.5}))
	if f.Code != 'D' || f.Token() != "D5" {
		t.Fatalf("token: got %q want D5", f.Token())
	}
}
