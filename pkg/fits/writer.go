package fits

import (
	"bytes"
	"fmt"
	"io"
)

const writerPadBufSize = BlockSize

// Writer serializes HDUs as whole 2880-byte blocks.
//
// The first HDU written must be a primary (SIMPLE) HDU and every later one an
// extension (XTENSION). Headers must be sealed.
type Writer struct {
	w       io.Writer
	n       int64
	count   int
	closed  bool
	zeroPad []byte
	fillPad []byte
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       w,
		zeroPad: make([]byte, writerPadBufSize),
		fillPad: bytes.Repeat([]byte{' '}, writerPadBufSize),
	}
}

// WriteHDU writes the header followed by the data padded to a block boundary.
func (w *Writer) WriteHDU(h *HDU) error {
	if w.closed {
		return ErrWriterClosed
	}
	if h == nil || !h.Header.Sealed() {
		return ErrHeaderUnsealed
	}
	isPrimary := h.Type() == "PRIMARY"
	if (w.count == 0) != isPrimary {
		return fmt.Errorf("%w: HDU %d is %q", ErrHDUOrder, w.count+1, h.Type())
	}

	if err := w.write(h.Header.Bytes()); err != nil {
		return err
	}
	if len(h.Data) > 0 {
		if err := w.write(h.Data); err != nil {
			return err
		}
		pad := w.zeroPad
		if h.padByte() == ' ' {
			pad = w.fillPad
		}
		if err := w.write(pad[:blocksFor(int64(len(h.Data)))-int64(len(h.Data))]); err != nil {
			return err
		}
	}
	w.count++
	return nil
}

func (w *Writer) write(p []byte) error {
	for len(p) > 0 {
		n, err := w.w.Write(p)
		w.n += int64(n)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.n }

// Close marks the writer finished. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	return nil
}

// Encode serializes hdus into a single byte slice.
func Encode(hdus ...*HDU) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, h := range hdus {
		if err := w.WriteHDU(h); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
