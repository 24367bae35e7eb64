package fits

// Kind is the closed set of element kinds the builders understand.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindLogical

	numKinds
)

type kindInfo struct {
	name  string
	size  int // bytes per element, 0 for non-numeric kinds
	float bool
	bzero string // BZERO offset applied to the stored value
	code  byte   // ASCII table type code
}

// kindTable must hold exactly one entry per Kind.
var kindTable = [...]kindInfo{
	KindInt8:    {name: "int8", size: 1, bzero: "-128", code: 'I'},
	KindUint8:   {name: "uint8", size: 1, bzero: "0", code: 'I'},
	KindInt16:   {name: "int16", size: 2, bzero: "0", code: 'I'},
	KindUint16:  {name: "uint16", size: 2, bzero: "32768", code: 'I'},
	KindInt32:   {name: "int32", size: 4, bzero: "0", code: 'I'},
	KindUint32:  {name: "uint32", size: 4, bzero: "2147483648", code: 'I'},
	KindInt64:   {name: "int64", size: 8, bzero: "0", code: 'I'},
	KindUint64:  {name: "uint64", size: 8, bzero: "9223372036854775808", code: 'I'},
	KindFloat32: {name: "float32", size: 4, float: true, bzero: "0", code: 'E'},
	KindFloat64: {name: "float64", size: 8, float: true, bzero: "0", code: 'D'},
	KindChar:    {name: "char", code: 'A'},
	KindString:  {name: "string", code: 'A'},
	KindLogical: {name: "logical", code: 'X'},
}

// Compile-time completeness: both lengths must agree or one array size goes negative.
var (
	_ [len(kindTable) - int(numKinds)]struct{}
	_ [int(numKinds) - len(kindTable)]struct{}
)

func (k Kind) info() kindInfo {
	if k >= numKinds {
		return kindInfo{name: "unknown", code: 'X'}
	}
	return kindTable[k]
}

func (k Kind) String() string { return k.info().name }

// Numeric reports whether k can be stored in an image data segment.
func (k Kind) Numeric() bool { return k.info().size > 0 }

// Float reports whether k is a floating-point kind.
func (k Kind) Float() bool { return k.info().float }

// Size is the element size in bytes, 0 for non-numeric kinds.
func (k Kind) Size() int { return k.info().size }

// Bitpix returns the BITPIX value for k: -(8*size) for floats, +(8*size) otherwise.
// Non-numeric kinds return 0.
func (k Kind) Bitpix() int {
	info := k.info()
	if info.size == 0 {
		return 0
	}
	if info.float {
		return -8 * info.size
	}
	return 8 * info.size
}

// BZero is the literal BZERO value written for k.
func (k Kind) BZero() string {
	if b := k.info().bzero; b != "" {
		return b
	}
	return "0"
}

// Code is the ASCII table type code before fixed-decimal override.
func (k Kind) Code() byte { return k.info().code }

// ParseKind resolves a kind by name (as returned by Kind.String).
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}
	return 0, false
}
