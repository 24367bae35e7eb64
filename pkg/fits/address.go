package fits

import (
	"fmt"
	"io"
)

// Layout holds the offsets of every HDU in one stream.
type Layout struct {
	Length  int64
	Headers []int64
	Data    []int64
	Ends    []int64
}

// streamLength seeks to the end of rs and reports its size.
func streamLength(rs io.ReadSeeker) (int64, error) {
	n, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("fits: seek end: %w", err)
	}
	return n, nil
}

func wholeUnits(rs io.ReadSeeker, unit int64, partial error) (int64, error) {
	n, err := streamLength(rs)
	if err != nil {
		return 0, err
	}
	if n%unit != 0 {
		return n, fmt.Errorf("%w: %d bytes leaves %d", partial, n, n%unit)
	}
	return n, nil
}

func offsets(n, step int64) []int64 {
	out := make([]int64, 0, n/step)
	for off := int64(0); off+step <= n; off += step {
		out = append(out, off)
	}
	return out
}

// RecordPointers returns the offset of every 80-byte record.
func RecordPointers(rs io.ReadSeeker) ([]int64, error) {
	n, err := wholeUnits(rs, RecordSize, ErrPartialRecord)
	if err != nil {
		return nil, err
	}
	return offsets(n, RecordSize), nil
}

// BlockPointers returns the offset of every 2880-byte block.
func BlockPointers(rs io.ReadSeeker) ([]int64, error) {
	n, err := wholeUnits(rs, BlockSize, ErrPartialBlock)
	if err != nil {
		return nil, err
	}
	return offsets(n, BlockSize), nil
}

// HeaderPointers returns the block offsets whose first 8 bytes are SIMPLE or XTENSION.
func HeaderPointers(rs io.ReadSeeker) ([]int64, error) {
	n, err := wholeUnits(rs, BlockSize, ErrPartialBlock)
	if err != nil {
		return nil, err
	}
	return headerOffsets(rs, n)
}

// DataPointers returns, for each header, the block-aligned offset following
// the block that holds its END record.
func DataPointers(rs io.ReadSeeker) ([]int64, error) {
	n, err := wholeUnits(rs, BlockSize, ErrPartialBlock)
	if err != nil {
		return nil, err
	}
	headers, err := headerOffsets(rs, n)
	if err != nil {
		return nil, err
	}
	return dataOffsets(rs, headers, n)
}

// EndPointers returns the end of each HDU: the next header's offset, or the
// stream length for the last one.
func EndPointers(rs io.ReadSeeker) ([]int64, error) {
	n, err := wholeUnits(rs, BlockSize, ErrPartialBlock)
	if err != nil {
		return nil, err
	}
	headers, err := headerOffsets(rs, n)
	if err != nil {
		return nil, err
	}
	return endOffsets(headers, n), nil
}

// ScanLayout computes header, data and end offsets for every HDU in rs.
func ScanLayout(rs io.ReadSeeker) (Layout, error) {
	n, err := wholeUnits(rs, BlockSize, ErrPartialBlock)
	if err != nil {
		return Layout{}, err
	}
	return scanLayout(rs, n)
}

// scanLayout addresses the first n bytes of rs. n must be a whole number of blocks.
func scanLayout(rs io.ReadSeeker, n int64) (Layout, error) {
	l := Layout{Length: n}
	var err error
	if l.Headers, err = headerOffsets(rs, n); err != nil {
		return Layout{}, err
	}
	if l.Data, err = dataOffsets(rs, l.Headers, n); err != nil {
		return Layout{}, err
	}
	l.Ends = endOffsets(l.Headers, n)
	return l, nil
}

func headerOffsets(rs io.ReadSeeker, n int64) ([]int64, error) {
	var (
		out []int64
		key [keywordWidth]byte
	)
	for _, off := range offsets(n, BlockSize) {
		if _, err := rs.Seek(off, io.SeekStart); err != nil {
			return nil, fmt.Errorf("fits: seek block %d: %w", off, err)
		}
		if _, err := io.ReadFull(rs, key[:]); err != nil {
			return nil, fmt.Errorf("fits: read block %d: %w", off, err)
		}
		if s := string(key[:]); s == markSimple || s == markXtension {
			out = append(out, off)
		}
	}
	return out, nil
}

func dataOffsets(rs io.ReadSeeker, headers []int64, n int64) ([]int64, error) {
	out := make([]int64, 0, len(headers))
	for _, h := range headers {
		end, err := findEnd(rs, h, n)
		if err != nil {
			return nil, err
		}
		out = append(out, (end/BlockSize+1)*BlockSize)
	}
	return out, nil
}

func endOffsets(headers []int64, n int64) []int64 {
	out := make([]int64, len(headers))
	for i := range headers {
		if i+1 < len(headers) {
			out[i] = headers[i+1]
		} else {
			out[i] = n
		}
	}
	return out
}

// findEnd scans records from start, across block boundaries, until END.
func findEnd(rs io.ReadSeeker, start, n int64) (int64, error) {
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("fits: seek header %d: %w", start, err)
	}
	var rec Record
	for off := start; off+RecordSize <= n; off += RecordSize {
		if _, err := io.ReadFull(rs, rec[:]); err != nil {
			return 0, fmt.Errorf("fits: read record %d: %w", off, err)
		}
		if rec.IsEnd() {
			return off, nil
		}
	}
	return 0, fmt.Errorf("%w: header at offset %d", ErrMissingEnd, start)
}
