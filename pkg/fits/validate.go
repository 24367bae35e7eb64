package fits

import (
	"fmt"
	"io"
)

// Check names reported in CheckResult.Name.
const (
	CheckBlocks       = "block-count"
	CheckHeaderBlocks = "header-blocks"
	CheckASCII        = "header-ascii"
	CheckKeywordOrder = "keyword-order"
)

// CheckResult is the outcome of one structural check. HDU is 1-based, or 0 for
// checks on the whole stream.
type CheckResult struct {
	Name    string `json:"name"`
	HDU     int    `json:"hdu"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Report is the ordered list of every check that ran.
type Report struct {
	Results []CheckResult `json:"results"`
}

// Passed returns one boolean per check, in run order.
func (r Report) Passed() []bool {
	out := make([]bool, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Passed
	}
	return out
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failed checks.
func (r Report) Failures() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Validate runs every structural check against rs and its parsed HDUs. A
// failing check never stops the run. Each result is also logged: Info when it
// passes, Warn when it fails. log may be nil.
func Validate(rs io.ReadSeeker, hdus []*HDU, log Logger) Report {
	if log == nil {
		log = nopLogger{}
	}
	var rep Report
	add := func(res CheckResult) {
		rep.Results = append(rep.Results, res)
		if res.Passed {
			log.Info(res.Message, "check", res.Name, "hdu", res.HDU)
		} else {
			log.Warn(res.Message, "check", res.Name, "hdu", res.HDU)
		}
	}

	add(checkBlocks(rs))
	for i, h := range hdus {
		n := i + 1
		add(checkHeaderBlocks(n, h.Header))
		add(checkHeaderASCII(n, h.Header))
		add(checkKeywordOrder(n, h.Header))
	}
	return rep
}

func checkBlocks(rs io.ReadSeeker) CheckResult {
	res := CheckResult{Name: CheckBlocks}
	n, err := streamLength(rs)
	switch {
	case err != nil:
		res.Message = err.Error()
	case n%BlockSize != 0:
		res.Message = fmt.Sprintf("non-integer block count: %d bytes is %d blocks + %d bytes", n, n/BlockSize, n%BlockSize)
	default:
		res.Passed = true
		res.Message = fmt.Sprintf("%d bytes in %d blocks", n, n/BlockSize)
	}
	return res
}

func checkHeaderBlocks(hdu int, h *Header) CheckResult {
	res := CheckResult{Name: CheckHeaderBlocks, HDU: hdu}
	n := h.Len()
	if n == 0 || n%RecordsPerBlock != 0 {
		res.Message = fmt.Sprintf("HDU %d header failed block test: %d records is %d blocks + %d records",
			hdu, n, n/RecordsPerBlock, n%RecordsPerBlock)
		return res
	}
	res.Passed = true
	res.Message = fmt.Sprintf("HDU %d header has %d records in %d blocks", hdu, n, n/RecordsPerBlock)
	return res
}

func checkHeaderASCII(hdu int, h *Header) CheckResult {
	res := CheckResult{Name: CheckASCII, HDU: hdu}
	if h != nil {
		for i, r := range h.Records {
			for j, c := range r {
				if c < 32 || c > 126 {
					res.Message = fmt.Sprintf("HDU %d header has non-ASCII character %d at record %d column %d",
						hdu, c, i+1, j+1)
					return res
				}
			}
		}
	}
	res.Passed = true
	res.Message = fmt.Sprintf("HDU %d header is printable ASCII", hdu)
	return res
}

// checkKeywordOrder verifies the mandatory keyword sequence:
// SIMPLE|XTENSION, BITPIX, NAXIS, NAXIS1..NAXISn, then PCOUNT, GCOUNT for extensions.
func checkKeywordOrder(hdu int, h *Header) CheckResult {
	res := CheckResult{Name: CheckKeywordOrder, HDU: hdu}
	var recs []Record
	if h != nil {
		recs = h.Records
	}

	first := "SIMPLE"
	if hdu > 1 {
		first = "XTENSION"
	}
	want := []string{first, "BITPIX", "NAXIS"}
	for i, key := range want {
		if msg := expectKeyword(hdu, recs, i, key); msg != "" {
			res.Message = msg
			return res
		}
	}

	v, _ := recs[2].Value()
	naxis, ok := v.Int()
	if !ok || naxis < 0 || naxis > 999 {
		res.Message = fmt.Sprintf("HDU %d NAXIS value %q is not a valid axis count", hdu, v.Raw)
		return res
	}
	for i := 1; i <= int(naxis); i++ {
		want = append(want, nth("NAXIS", i))
	}
	if hdu > 1 {
		want = append(want, "PCOUNT", "GCOUNT")
	}
	for i := 3; i < len(want); i++ {
		if msg := expectKeyword(hdu, recs, i, want[i]); msg != "" {
			res.Message = msg
			return res
		}
	}
	res.Passed = true
	res.Message = fmt.Sprintf("HDU %d mandatory keywords in order", hdu)
	return res
}

func expectKeyword(hdu int, recs []Record, i int, key string) string {
	if i >= len(recs) {
		return fmt.Sprintf("HDU %d keyword %s out of order: header ends at record %d", hdu, key, len(recs))
	}
	if got := recs[i].Keyword(); got != key {
		return fmt.Sprintf("HDU %d keyword %s out of order: record %d is %q", hdu, key, i+1, got)
	}
	return ""
}
