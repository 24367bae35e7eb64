package fits

import (
	"bytes"
	"strings"
	"testing"
)

func encodeSample(t *testing.T) []byte {
	t.Helper()
	a, err := NewArray([]int32{1, 2, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("new array: %v", err)
	}
	primary, err := BuildPrimary(a)
	if err != nil {
		t.Fatalf("build primary: %v", err)
	}
	img, err := BuildImage(a)
	if err != nil {
		t.Fatalf("build image: %v", err)
	}
	tbl, err := BuildTable(sampleColumns())
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	raw, err := Encode(primary, img, tbl)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return raw
}

func TestValidateEncodedFile(t *testing.T) {
	t.Parallel()

	raw := encodeSample(t)
	hdus, err := ReadHDUs(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read hdus: %v", err)
	}
	log := &captureLogger{}
	rep := Validate(bytes.NewReader(raw), hdus, log)
	if !rep.OK() {
		t.Fatalf("expected all checks to pass: %+v", rep.Failures())
	}
	if want := 1 + 3*len(hdus); len(rep.Results) != want {
		t.Fatalf("result count: got %d want %d", len(rep.Results), want)
	}
	if len(log.infos) != len(rep.Results) || len(log.warns) != 0 {
		t.Fatalf("diagnostic sink: %d infos %d warns", len(log.infos), len(log.warns))
	}
}

func TestValidatePartialBlock(t *testing.T) {
	t.Parallel()

	rs := bytes.NewReader(make([]byte, BlockSize+1))
	rep := Validate(rs, nil, nil)
	if len(rep.Results) != 1 {
		t.Fatalf("result count: got %d want 1", len(rep.Results))
	}
	res := rep.Results[0]
	if res.Passed || res.Name != CheckBlocks || !strings.Contains(res.Message, "non-integer block count") {
		t.Fatalf("block check: %+v", res)
	}
}

func TestValidateMissingPCOUNT(t *testing.T) {
	t.Parallel()

	primary, err := BuildPrimary(nil)
	if err != nil {
		t.Fatalf("build primary: %v", err)
	}
	tbl, err := BuildTable(sampleColumns())
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	recs := tbl.Header.Records
	if recs[5].Keyword() != "PCOUNT" {
		t.Fatalf("expected PCOUNT at record 6, got %q", recs[5].Keyword())
	}
	broken := append(append([]Record{}, recs[:5]...), recs[6:]...)
	broken = append(broken, blankRecord)
	tbl.Header = &Header{Records: broken}

	raw, err := Encode(primary, tbl)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rep := Validate(bytes.NewReader(raw), []*HDU{primary, tbl}, nil)

	var order *CheckResult
	for i := range rep.Results {
		r := &rep.Results[i]
		if r.Name == CheckKeywordOrder && r.HDU == 2 {
			order = r
		}
	}
	if order == nil {
		t.Fatalf("keyword order check did not run for HDU 2")
	}
	if order.Passed || !strings.Contains(order.Message, "PCOUNT") {
		t.Fatalf("expected PCOUNT order failure, got %+v", order)
	}
	if got := rep.Passed(); len(got) != 7 || !got[0] {
		t.Fatalf("passed vector: %v", got)
	}
}

func TestValidateRunsEveryCheck(t *testing.T) {
	t.Parallel()

	primary, err := BuildPrimary(nil)
	if err != nil {
		t.Fatalf("build primary: %v", err)
	}
	recs := append([]Record{}, primary.Header.Records...)
	recs[4][20] = 0x07 // control character in the COMMENT record
	bad := &HDU{Header: &Header{Records: recs[:35]}}

	log := &captureLogger{}
	rs := bytes.NewReader(make([]byte, 100))
	rep := Validate(rs, []*HDU{bad}, log)
	want := []bool{false, false, false, true}
	got := rep.Passed()
	if len(got) != len(want) {
		t.Fatalf("passed vector: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("passed vector: got %v want %v (%+v)", got, want, rep.Results)
		}
	}
	if !strings.Contains(rep.Results[1].Message, "header failed block test") {
		t.Fatalf("header block message: %q", rep.Results[1].Message)
	}
	if !strings.Contains(rep.Results[2].Message, "HDU 1") {
		t.Fatalf("ascii message should name the HDU: %q", rep.Results[2].Message)
	}
	if len(log.warns) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(log.warns))
	}
}

func TestValidateExtensionKeywordOrder(t *testing.T) {
	t.Parallel()

	img, err := BuildImage(mustArray(t))
	if err != nil {
		t.Fatalf("build image: %v", err)
	}
	// An extension in first position must start with SIMPLE.
	res := checkKeywordOrder(1, img.Header)
	if res.Passed || !strings.Contains(res.Message, "SIMPLE") {
		t.Fatalf("expected SIMPLE failure, got %+v", res)
	}
	res = checkKeywordOrder(2, img.Header)
	if !res.Passed {
		t.Fatalf("expected extension order to pass, got %+v", res)
	}
	res = checkKeywordOrder(2, &Header{})
	if res.Passed || !strings.Contains(res.Message, "XTENSION") {
		t.Fatalf("empty header should fail on XTENSION, got %+v", res)
	}
}

func mustArray(t *testing.T) *Array {
	t.Helper()
	a, err := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("new array: %v", err)
	}
	return a
}
