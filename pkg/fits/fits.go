// Package fits encodes, navigates and validates FITS files.
//
// A FITS stream is a sequence of 2880-byte blocks. Each Header Data Unit (HDU)
// starts with a header made of 80-byte ASCII records terminated by END and padded
// to a block boundary, followed by an optional data segment padded the same way.
// The package covers Primary, IMAGE and ASCII TABLE HDUs only.
//
// Headers and layouts are derived views: they are recomputed from the byte stream
// on every call and never cached.
package fits

// FITS layout constants must never change.
const (
	// RecordSize is the length of one header record (card image).
	RecordSize = 80

	// BlockSize is the length of one logical block.
	BlockSize = 2880

	// RecordsPerBlock is the number of header records in one block.
	RecordsPerBlock = BlockSize / RecordSize

	// MaxFields is the largest TFIELDS value representable with 8-character keywords.
	MaxFields = 999

	// valueWidth is the width of the fixed-format value field (columns 11-30).
	valueWidth = 20

	// keywordWidth is the width of the keyword field (columns 1-8).
	keywordWidth = 8

	// MaxStringLen is the longest string value that fits between the quotes
	// in columns 11-80, counting each embedded quote twice.
	MaxStringLen = RecordSize - keywordWidth - 2 - 2
)

// Keyword markers compared against the first 8 bytes of a record.
const (
	markSimple   = "SIMPLE  "
	markXtension = "XTENSION"
	markEnd      = "END     "
)

// Extension types produced by this package.
const (
	ExtImage = "IMAGE"
	ExtTable = "TABLE"
)

// primaryComment is the fixed COMMENT emitted by every builder.
const primaryComment = "FITS (Flexible Image Transport System) format: A&A 376, 359 (2001)"

// blocksFor rounds n bytes up to a whole number of blocks and returns the padded size.
func blocksFor(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return ((n + BlockSize - 1) / BlockSize) * BlockSize
}
