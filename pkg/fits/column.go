package fits

import "strconv"

// Cell is the set of Go types a table column may hold.
type Cell interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string | bool
}

// Column is a named table column. Cells are kept in their rendered form,
// which is what the ASCII table stores.
type Column struct {
	Name  string
	kind  Kind
	cells []string
}

// NewColumn renders values and records their element kind.
func NewColumn[T Cell](name string, values []T) Column {
	c := Column{Name: name, cells: make([]string, len(values))}
	var z T
	c.kind = cellKind(any(z))
	for i, v := range values {
		c.cells[i] = renderCell(any(v))
	}
	return c
}

// NewCharColumn builds a single-character column.
func NewCharColumn(name string, values []rune) Column {
	c := Column{Name: name, kind: KindChar, cells: make([]string, len(values))}
	for i, r := range values {
		c.cells[i] = string(r)
	}
	return c
}

// Kind is the element kind of the column.
func (c Column) Kind() Kind { return c.kind }

// Len is the number of rows.
func (c Column) Len() int { return len(c.cells) }

// Cell returns the rendered value of row i.
func (c Column) Cell(i int) string { return c.cells[i] }

func cellKind(v any) Kind {
	switch v.(type) {
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
	case int, int64:
		return KindInt64
	case uint, uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	default:
		return KindLogical
	}
}

// renderCell produces the shortest text that round-trips the value.
func renderCell(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case bool:
		if x {
			return "T"
		}
		return "F"
	}
	return ""
}
