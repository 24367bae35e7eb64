package fits

import (
	"fmt"
	"io"
)

// ReadHDUs splits rs into HDUs using the offsets from ScanLayout. Each header
// holds every record from its start up to the data pointer, padding included.
func ReadHDUs(rs io.ReadSeeker) ([]*HDU, error) {
	l, err := ScanLayout(rs)
	if err != nil {
		return nil, err
	}
	return readLayout(rs, l)
}

// ReadWholeBlocks is ReadHDUs over the whole-block prefix of rs. A trailing
// partial block is ignored, so a truncated file still yields its headers.
func ReadWholeBlocks(rs io.ReadSeeker) ([]*HDU, error) {
	n, err := streamLength(rs)
	if err != nil {
		return nil, err
	}
	l, err := scanLayout(rs, n-n%BlockSize)
	if err != nil {
		return nil, err
	}
	return readLayout(rs, l)
}

func readLayout(rs io.ReadSeeker, l Layout) ([]*HDU, error) {
	if len(l.Headers) == 0 || l.Headers[0] != 0 {
		return nil, ErrNotFITS
	}
	hdus := make([]*HDU, 0, len(l.Headers))
	for i, start := range l.Headers {
		dataOff, end := l.Data[i], l.Ends[i]
		if dataOff > end {
			return nil, fmt.Errorf("%w: header at offset %d runs into the next HDU", ErrMissingEnd, start)
		}
		raw, err := readSpan(rs, start, dataOff-start)
		if err != nil {
			return nil, err
		}
		hdr := &Header{Records: make([]Record, len(raw)/RecordSize)}
		for j := range hdr.Records {
			copy(hdr.Records[j][:], raw[j*RecordSize:])
		}

		data, err := readSpan(rs, dataOff, end-dataOff)
		if err != nil {
			return nil, err
		}
		if size, err := hdr.DataSize(); err == nil && size >= 0 && size <= int64(len(data)) {
			data = data[:size]
		}
		hdus = append(hdus, &HDU{Header: hdr, Data: data, Offset: start})
	}
	return hdus, nil
}

func readSpan(rs io.ReadSeeker, off, n int64) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if _, err := rs.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("fits: seek %d: %w", off, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return nil, fmt.Errorf("fits: read %d bytes at %d: %w", n, off, err)
	}
	return buf, nil
}
