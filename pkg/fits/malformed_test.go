package fits

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// headerBlock serializes recs and pads them with blank records to a block boundary.
func headerBlock(recs ...Record) []byte {
	for len(recs)%RecordsPerBlock != 0 {
		recs = append(recs, blankRecord)
	}
	return (&Header{Records: recs}).Bytes()
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestReadMalformedHeaders(t *testing.T) {
	t.Parallel()

	simple := boolRecord("SIMPLE", true, "")
	bitpix := intRecord("BITPIX", 8, "")
	dataBlock := make([]byte, BlockSize)

	cases := []struct {
		name      string
		stream    []byte
		readErr   error
		sizeErr   error
		orderFail string
	}{
		{
			name: "negative axis",
			stream: join(headerBlock(simple, bitpix, intRecord("NAXIS", 1, ""),
				intRecord("NAXIS1", -5, ""), endRecord()), dataBlock),
			sizeErr: ErrHeaderValue,
		},
		{
			name: "axis product overflows",
			stream: join(headerBlock(simple, bitpix, intRecord("NAXIS", 2, ""),
				intRecord("NAXIS1", 1<<62, ""), intRecord("NAXIS2", 4, ""), endRecord()), dataBlock),
			sizeErr: ErrHeaderValue,
		},
		{
			name: "data size overflows",
			stream: join(headerBlock(simple, intRecord("BITPIX", -64, ""), intRecord("NAXIS", 1, ""),
				intRecord("NAXIS1", 1<<61, ""), endRecord()), dataBlock),
			sizeErr: ErrHeaderValue,
		},
		{
			name: "non-integer NAXIS",
			stream: headerBlock(simple, bitpix, stringRecord("NAXIS", "two", ""),
				endRecord()),
			orderFail: "not a valid axis count",
		},
		{
			name: "missing END runs into next HDU",
			stream: join(headerBlock(simple, bitpix, intRecord("NAXIS", 0, "")),
				headerBlock(stringRecord("XTENSION", ExtImage, ""), bitpix, intRecord("NAXIS", 0, ""),
					intRecord("PCOUNT", 0, ""), intRecord("GCOUNT", 1, ""), endRecord())),
			readErr: ErrMissingEnd,
		},
		{
			name:    "no END at all",
			stream:  headerBlock(simple, bitpix, intRecord("NAXIS", 0, "")),
			readErr: ErrMissingEnd,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hdus, err := ReadHDUs(bytes.NewReader(tc.stream))
			if tc.readErr != nil {
				if !errors.Is(err, tc.readErr) {
					t.Fatalf("read: got %v want %v", err, tc.readErr)
				}
				rep := Validate(bytes.NewReader(tc.stream), nil, nil)
				if len(rep.Results) != 1 || !rep.Results[0].Passed {
					t.Fatalf("block check on unparsed stream: %+v", rep.Results)
				}
				return
			}
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(hdus) != 1 {
				t.Fatalf("hdu count: got %d want 1", len(hdus))
			}
			if tc.sizeErr != nil {
				if _, err := hdus[0].Header.DataSize(); !errors.Is(err, tc.sizeErr) {
					t.Fatalf("data size: got %v want %v", err, tc.sizeErr)
				}
				if got := len(hdus[0].Data); got != BlockSize {
					t.Fatalf("data should stay untrimmed: got %d bytes", got)
				}
			}

			rep := Validate(bytes.NewReader(tc.stream), hdus, nil)
			if want := 4; len(rep.Results) != want {
				t.Fatalf("result count: got %d want %d", len(rep.Results), want)
			}
			order := rep.Results[3]
			if tc.orderFail == "" && !order.Passed {
				t.Fatalf("keyword order should pass: %+v", order)
			}
			if tc.orderFail != "" && (order.Passed || !strings.Contains(order.Message, tc.orderFail)) {
				t.Fatalf("keyword order: got %+v want failure containing %q", order, tc.orderFail)
			}
		})
	}
}

func TestDataSizeRejectsNegativeCounts(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"PCOUNT", "GCOUNT"} {
		recs := []Record{
			stringRecord("XTENSION", ExtImage, ""),
			intRecord("BITPIX", 8, ""),
			intRecord("NAXIS", 1, ""),
			intRecord("NAXIS1", 4, ""),
			intRecord(key, -10, ""),
			endRecord(),
		}
		if _, err := (&Header{Records: recs}).DataSize(); !errors.Is(err, ErrHeaderValue) {
			t.Fatalf("%s: got %v want ErrHeaderValue", key, err)
		}
	}
}

func TestValidatePartialFileStillChecksHeaders(t *testing.T) {
	t.Parallel()

	// SIMPLE and NAXIS but no BITPIX, followed by one stray byte.
	raw := append(headerBlock(boolRecord("SIMPLE", true, ""), intRecord("NAXIS", 0, ""), endRecord()), ' ')
	if len(raw) != BlockSize+1 {
		t.Fatalf("stream length: got %d", len(raw))
	}

	if _, err := ReadHDUs(bytes.NewReader(raw)); !errors.Is(err, ErrPartialBlock) {
		t.Fatalf("strict read: got %v want ErrPartialBlock", err)
	}
	hdus, err := ReadWholeBlocks(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("whole-block read: %v", err)
	}
	if len(hdus) != 1 {
		t.Fatalf("hdu count: got %d want 1", len(hdus))
	}

	rep := Validate(bytes.NewReader(raw), hdus, nil)
	failed := map[string]CheckResult{}
	for _, res := range rep.Failures() {
		failed[res.Name] = res
	}
	if _, ok := failed[CheckBlocks]; !ok {
		t.Fatalf("block check should fail: %+v", rep.Results)
	}
	order, ok := failed[CheckKeywordOrder]
	if !ok || !strings.Contains(order.Message, "BITPIX") {
		t.Fatalf("keyword order should report the missing BITPIX: %+v", rep.Results)
	}
	if len(failed) != 2 {
		t.Fatalf("unexpected failures: %+v", rep.Failures())
	}
}
