package fits

import (
	"errors"
	"fmt"
)

var (
	// Structural errors found while addressing or reading a stream.
	ErrPartialRecord = errors.New("fits: stream length is not a whole number of records")
	ErrPartialBlock  = errors.New("fits: stream length is not a whole number of blocks")
	ErrMissingEnd    = errors.New("fits: header has no END record")
	ErrNotFITS       = errors.New("fits: stream does not start with SIMPLE")
	ErrHeaderValue   = errors.New("fits: header value out of range")

	// Input-contract errors raised by the builders.
	ErrNotNumeric   = errors.New("fits: element type is not numeric")
	ErrEmptyArray   = errors.New("fits: image array is empty")
	ErrShape        = errors.New("fits: shape does not match data length")
	ErrNoColumns    = errors.New("fits: table has no columns")
	ErrColumnLength = errors.New("fits: table columns have unequal lengths")
	ErrNonASCII     = errors.New("fits: text is not printable 7-bit ASCII")
	ErrValueTooLong = errors.New("fits: string does not fit in one header record")

	// Misuse of the header builder or writer.
	ErrHeaderSealed   = errors.New("fits: header already sealed")
	ErrHeaderUnsealed = errors.New("fits: header is not sealed")
	ErrHDUOrder       = errors.New("fits: HDU order violates SIMPLE/XTENSION placement")
	ErrWriterClosed   = errors.New("fits: writer already closed")
)

// ContractError names the input that broke a builder's contract.
// It unwraps to one of the input-contract sentinels so callers can use errors.Is.
type ContractError struct {
	Err    error
	Column string
	Kind   Kind
	Detail string
}

func (e *ContractError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %q)", e.Column)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func columnError(err error, column, detail string) error {
	return &ContractError{Err: err, Column: column, Detail: detail}
}

func kindError(k Kind) error {
	return &ContractError{Err: ErrNotNumeric, Kind: k, Detail: "got " + k.String()}
}
