package fits

import (
	"bytes"
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var errTooLarge = errors.New("fits: file too large to address")

// File is a FITS file loaded read-only into memory.
type File struct {
	Data    []byte
	mmapped bool
}

// Open maps path read-only. If mmap is unavailable, it falls back to
// ReadAt-based loading. The returned file must be closed to release any mapping.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, errTooLarge
	}
	size := int(size64)

	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &File{Data: data, mmapped: true}, nil
		}
	}

	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

// OpenReaderAt loads a FITS stream from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, errTooLarge
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Reader returns a fresh stream over the file contents.
func (f *File) Reader() *bytes.Reader {
	return bytes.NewReader(f.Data)
}

// HDUs parses every HDU in the file.
func (f *File) HDUs() ([]*HDU, error) {
	return ReadHDUs(f.Reader())
}

// Validate parses the whole-block prefix of the file and runs every structural
// check. When parsing fails the stream-level checks still run and the parse
// error is returned alongside the report.
func (f *File) Validate(log Logger) (Report, error) {
	hdus, err := ReadWholeBlocks(f.Reader())
	return Validate(f.Reader(), hdus, log), err
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.Data = nil
	f.mmapped = false
	return err
}
