package fits

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	raw := encodeSample(t)
	if len(raw)%BlockSize != 0 {
		t.Fatalf("encoded length %d is not block aligned", len(raw))
	}
	hdus, err := ReadHDUs(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read hdus: %v", err)
	}
	if len(hdus) != 3 {
		t.Fatalf("hdu count: got %d want 3", len(hdus))
	}
	wantTypes := []string{"PRIMARY", ExtImage, ExtTable}
	for i, h := range hdus {
		if h.Type() != wantTypes[i] {
			t.Fatalf("hdu %d type: got %q want %q", i, h.Type(), wantTypes[i])
		}
		assertSealed(t, h.Header)
	}
	if got, want := len(hdus[1].Data), 16; got != want {
		t.Fatalf("image data: got %d bytes want %d", got, want)
	}
	if string(hdus[2].Data[:17]) != "1 1.5    vega    " {
		t.Fatalf("table row: got %q", hdus[2].Data[:17])
	}

	// Table padding is blanks, image padding is zeros.
	tableEnd := hdus[2].Offset + int64(hdus[2].Header.Len()*RecordSize) + int64(len(hdus[2].Data))
	if raw[tableEnd] != ' ' {
		t.Fatalf("table padding byte: got %q want ' '", raw[tableEnd])
	}
	imgEnd := hdus[1].Offset + int64(hdus[1].Header.Len()*RecordSize) + int64(len(hdus[1].Data))
	if raw[imgEnd] != 0 {
		t.Fatalf("image padding byte: got %d want 0", raw[imgEnd])
	}
}

func TestWriterOrderAndState(t *testing.T) {
	t.Parallel()

	img, err := BuildImage(mustArray(t))
	if err != nil {
		t.Fatalf("build image: %v", err)
	}
	primary, err := BuildPrimary(nil)
	if err != nil {
		t.Fatalf("build primary: %v", err)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteHDU(img); !errors.Is(err, ErrHDUOrder) {
		t.Fatalf("extension first: got %v want ErrHDUOrder", err)
	}
	if err := w.WriteHDU(primary); err != nil {
		t.Fatalf("write primary: %v", err)
	}
	if err := w.WriteHDU(primary); !errors.Is(err, ErrHDUOrder) {
		t.Fatalf("second primary: got %v want ErrHDUOrder", err)
	}
	unsealed := &HDU{Header: &Header{Records: img.Header.Records[:10]}}
	if err := w.WriteHDU(unsealed); !errors.Is(err, ErrHeaderUnsealed) {
		t.Fatalf("unsealed header: got %v want ErrHeaderUnsealed", err)
	}
	if err := w.WriteHDU(img); err != nil {
		t.Fatalf("write image: %v", err)
	}
	if w.Written() != int64(buf.Len()) || buf.Len() != 3*BlockSize {
		t.Fatalf("written: got %d, buffer %d", w.Written(), buf.Len())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.WriteHDU(img); !errors.Is(err, ErrWriterClosed) {
		t.Fatalf("write after close: got %v want ErrWriterClosed", err)
	}
}

func TestReadHDUsRejectsNonFITS(t *testing.T) {
	t.Parallel()

	rs := bytes.NewReader(blockStream(1, nil))
	if _, err := ReadHDUs(rs); !errors.Is(err, ErrNotFITS) {
		t.Fatalf("got %v want ErrNotFITS", err)
	}
}

func TestHeaderBuilderSealOnce(t *testing.T) {
	t.Parallel()

	b := newHeaderBuilder()
	b.bool("SIMPLE", true, "")
	h, err := b.seal()
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if h.Len() != RecordsPerBlock {
		t.Fatalf("sealed length: got %d", h.Len())
	}
	b.int("BITPIX", 8, "")
	if _, err := b.seal(); !errors.Is(err, ErrHeaderSealed) {
		t.Fatalf("second seal: got %v want ErrHeaderSealed", err)
	}
	if h.Len() != RecordsPerBlock {
		t.Fatalf("append after seal changed the header")
	}
}
