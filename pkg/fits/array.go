package fits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Numeric is the set of Go element types that map onto an image BITPIX.
type Numeric interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Array is an n-dimensional real-numeric array. Shape is in FITS axis order:
// Shape[0] is NAXIS1, the fastest varying axis of the flat data.
type Array struct {
	kind  Kind
	shape []int
	data  any // []T for the Go type matching kind
}

// NewArray wraps data with the given shape. With no shape the array is one-dimensional.
func NewArray[T Numeric](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array{kind: kindOf[T](), shape: append([]int(nil), shape...), data: data}, nil
}

// ArrayFromValues converts float64 samples into an array of kind k. It is the
// entry point for callers that only know the element kind at runtime.
func ArrayFromValues(k Kind, shape []int, values []float64) (*Array, error) {
	switch k {
	case KindInt8:
		return NewArray(convert[int8](values), shape...)
	case KindUint8:
		return NewArray(convert[uint8](values), shape...)
	case KindInt16:
		return NewArray(convert[int16](values), shape...)
	case KindUint16:
		return NewArray(convert[uint16](values), shape...)
	case KindInt32:
		return NewArray(convert[int32](values), shape...)
	case KindUint32:
		return NewArray(convert[uint32](values), shape...)
	case KindInt64:
		return NewArray(convert[int64](values), shape...)
	case KindUint64:
		return NewArray(convert[uint64](values), shape...)
	case KindFloat32:
		return NewArray(convert[float32](values), shape...)
	case KindFloat64:
		return NewArray(convert[float64](values), shape...)
	}
	return nil, kindError(k)
}

func convert[T Numeric](values []float64) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func checkShape(shape []int, n int) error {
	prod := 1
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: negative axis %v", ErrShape, shape)
		}
		prod *= d
	}
	if prod != n {
		return fmt.Errorf("%w: shape %v holds %d elements, data has %d", ErrShape, shape, prod, n)
	}
	return nil
}

func kindOf[T Numeric]() Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}

// Kind returns the element kind.
func (a *Array) Kind() Kind { return a.kind }

// Shape returns a copy of the axis lengths.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Rank is the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Len is the number of elements.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// Data returns the wrapped slice untouched.
func (a *Array) Data() any { return a.data }

// encode renders the array as big-endian bytes with BZERO subtracted.
// Unsigned kinds and int8 store value-BZERO, which is a sign-bit flip.
func (a *Array) encode() []byte {
	out := make([]byte, a.Len()*a.kind.Size())
	be := binary.BigEndian
	switch d := a.data.(type) {
	case []int8:
		for i, v := range d {
			out[i] = byte(v) ^ 0x80
		}
	case []uint8:
		copy(out, d)
	case []int16:
		for i, v := range d {
			be.PutUint16(out[2*i:], uint16(v))
		}
	case []uint16:
		for i, v := range d {
			be.PutUint16(out[2*i:], v^0x8000)
		}
	case []int32:
		for i, v := range d {
			be.PutUint32(out[4*i:], uint32(v))
		}
	case []uint32:
		for i, v := range d {
			be.PutUint32(out[4*i:], v^0x80000000)
		}
	case []int64:
		for i, v := range d {
			be.PutUint64(out[8*i:], uint64(v))
		}
	case []uint64:
		for i, v := range d {
			be.PutUint64(out[8*i:], v^0x8000000000000000)
		}
	case []float32:
		for i, v := range d {
			be.PutUint32(out[4*i:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range d {
			be.PutUint64(out[8*i:], math.Float64bits(v))
		}
	}
	return out
}
