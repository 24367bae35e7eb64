package fits

import (
	"fmt"
	"math"
	"strconv"
)

// Header is an ordered sequence of records. Headers returned by the builders
// and by ReadHDUs end with END and hold a multiple of RecordsPerBlock records.
type Header struct {
	Records []Record
}

// Len returns the number of records including END and padding.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Records)
}

// Blocks returns the number of whole blocks the header occupies.
func (h *Header) Blocks() int {
	return h.Len() / RecordsPerBlock
}

// Sealed reports whether the header ends at a block boundary with an END record.
func (h *Header) Sealed() bool {
	if h.Len() == 0 || h.Len()%RecordsPerBlock != 0 {
		return false
	}
	return h.endIndex() >= 0
}

func (h *Header) endIndex() int {
	for i, r := range h.Records {
		if r.IsEnd() {
			return i
		}
	}
	return -1
}

// Bytes returns the serialized header.
func (h *Header) Bytes() []byte {
	out := make([]byte, 0, h.Len()*RecordSize)
	for _, r := range h.Records {
		out = append(out, r[:]...)
	}
	return out
}

// Keywords returns the keywords in order, stopping before END.
func (h *Header) Keywords() []string {
	keys := make([]string, 0, h.Len())
	for _, r := range h.Records {
		if r.IsEnd() {
			break
		}
		keys = append(keys, r.Keyword())
	}
	return keys
}

// Lookup returns the value of the first record carrying key.
func (h *Header) Lookup(key string) (Value, bool) {
	if h == nil {
		return Value{}, false
	}
	for _, r := range h.Records {
		if r.IsEnd() {
			break
		}
		if r.Keyword() != key {
			continue
		}
		if v, ok := r.Value(); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Int looks up an integer keyword.
func (h *Header) Int(key string) (int64, bool) {
	v, ok := h.Lookup(key)
	if !ok {
		return 0, false
	}
	return v.Int()
}

// Axes returns NAXIS1..NAXISn.
func (h *Header) Axes() ([]int64, error) {
	n, ok := h.Int("NAXIS")
	if !ok {
		return nil, fmt.Errorf("fits: header has no integer NAXIS")
	}
	if n < 0 || n > 999 {
		return nil, fmt.Errorf("fits: NAXIS out of range: %d", n)
	}
	axes := make([]int64, n)
	for i := range axes {
		key := nth("NAXIS", i+1)
		v, ok := h.Int(key)
		if !ok {
			return nil, fmt.Errorf("fits: header has no integer %s", key)
		}
		axes[i] = v
	}
	return axes, nil
}

// DataSize returns the unpadded data segment size declared by the header:
// |BITPIX|/8 * GCOUNT * (PCOUNT + NAXIS1*...*NAXISn). Negative axes, PCOUNT or
// GCOUNT and sizes that overflow int64 are reported as ErrHeaderValue.
func (h *Header) DataSize() (int64, error) {
	bitpix, ok := h.Int("BITPIX")
	if !ok {
		return 0, fmt.Errorf("fits: header has no integer BITPIX")
	}
	axes, err := h.Axes()
	if err != nil {
		return 0, err
	}
	if len(axes) == 0 {
		return 0, nil
	}
	elems := int64(1)
	for i, a := range axes {
		if a < 0 {
			return 0, fmt.Errorf("%w: %s = %d", ErrHeaderValue, nth("NAXIS", i+1), a)
		}
		if elems, ok = mulSize(elems, a); !ok {
			return 0, fmt.Errorf("%w: axis product overflows", ErrHeaderValue)
		}
	}
	pcount, ok := h.Int("PCOUNT")
	if !ok {
		pcount = 0
	}
	gcount, ok := h.Int("GCOUNT")
	if !ok {
		gcount = 1
	}
	if pcount < 0 || gcount < 0 {
		return 0, fmt.Errorf("%w: PCOUNT = %d, GCOUNT = %d", ErrHeaderValue, pcount, gcount)
	}
	if bitpix < 0 {
		bitpix = -bitpix
	}
	if pcount > math.MaxInt64-elems {
		return 0, fmt.Errorf("%w: PCOUNT + axis product overflows", ErrHeaderValue)
	}
	size, ok := mulSize(bitpix/8, gcount)
	if ok {
		size, ok = mulSize(size, pcount+elems)
	}
	if !ok {
		return 0, fmt.Errorf("%w: data size overflows", ErrHeaderValue)
	}
	return size, nil
}

// mulSize multiplies two non-negative sizes, reporting false on overflow.
func mulSize(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

func nth(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// headerBuilder appends records in one pass; seal adds END and pads to a block boundary.
type headerBuilder struct {
	recs   []Record
	sealed bool
	err    error
}

func newHeaderBuilder() *headerBuilder {
	return &headerBuilder{recs: make([]Record, 0, RecordsPerBlock)}
}

func (b *headerBuilder) add(r Record) {
	if b.sealed {
		if b.err == nil {
			b.err = ErrHeaderSealed
		}
		return
	}
	b.recs = append(b.recs, r)
}

func (b *headerBuilder) int(key string, v int64, comment string) {
	b.add(intRecord(key, v, comment))
}

func (b *headerBuilder) bool(key string, v bool, comment string) {
	b.add(boolRecord(key, v, comment))
}

func (b *headerBuilder) str(key, v, comment string) {
	if err := checkHeaderString(v); err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("%s: %w", key, err)
		}
		return
	}
	b.add(stringRecord(key, v, comment))
}

func (b *headerBuilder) raw(key, v, comment string) {
	b.add(valueRecord(key, v, comment))
}

func (b *headerBuilder) comment(text string) {
	b.add(commentRecord(text))
}

// axes writes NAXIS followed by NAXIS1..NAXISn.
func (b *headerBuilder) axes(shape []int) {
	b.int("NAXIS", int64(len(shape)), "number of data axes")
	for i, n := range shape {
		b.int(nth("NAXIS", i+1), int64(n), fmt.Sprintf("length of data axis %d", i+1))
	}
}

func (b *headerBuilder) scaling(k Kind) {
	b.raw("BZERO", k.BZero(), "offset data range to that of unsigned")
	b.raw("BSCALE", "1", "default scaling factor")
}

func (b *headerBuilder) seal() (*Header, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sealed {
		return nil, ErrHeaderSealed
	}
	b.recs = append(b.recs, endRecord())
	for len(b.recs)%RecordsPerBlock != 0 {
		b.recs = append(b.recs, blankRecord)
	}
	b.sealed = true
	return &Header{Records: b.recs}, nil
}
