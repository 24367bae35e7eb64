package fits

import (
	"fmt"
	"strings"
)

// TableLayout describes the fixed-width row layout of an ASCII table.
type TableLayout struct {
	Formats  []ColumnFormat
	Widths   []int // field width: 1 + longest rendering
	TBCol    []int // 1-based start column of each field
	RowWidth int
}

// BuildTable builds an ASCII TABLE extension from equal-length columns.
// Columns beyond MaxFields are dropped with a warning on the configured logger.
func BuildTable(cols []Column, opts ...BuildOption) (*HDU, error) {
	cfg := newBuildConfig(opts)
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	rows := cols[0].Len()
	for _, c := range cols[1:] {
		if c.Len() != rows {
			return nil, columnError(ErrColumnLength, c.Name,
				fmt.Sprintf("has %d rows, %q has %d", c.Len(), cols[0].Name, rows))
		}
	}
	for _, c := range cols {
		if err := checkASCII(c); err != nil {
			return nil, err
		}
	}
	if err := checkExtName(cfg.extName); err != nil {
		return nil, err
	}
	if len(cols) > MaxFields {
		cfg.log.Warn("table column count truncated", "columns", len(cols), "kept", MaxFields)
		cols = cols[:MaxFields]
	}

	layout := PlanTable(cols)
	data := make([]byte, 0, layout.RowWidth*rows)
	for r := 0; r < rows; r++ {
		for i, c := range cols {
			data = appendField(data, c.cells[r], layout.Widths[i])
		}
	}

	b := newHeaderBuilder()
	b.str("XTENSION", ExtTable, "ASCII table extension")
	b.int("BITPIX", 8, "array data type")
	b.int("NAXIS", 2, "number of data axes")
	b.int("NAXIS1", int64(layout.RowWidth), "length of a table row")
	b.int("NAXIS2", int64(rows), "number of table rows")
	b.int("PCOUNT", 0, "number of parameters")
	b.int("GCOUNT", 1, "number of groups")
	b.int("TFIELDS", int64(len(cols)), "number of table fields")
	b.int("COLSEP", 1, "blank columns between fields")
	if cfg.extName != "" {
		b.str("EXTNAME", cfg.extName, "extension name")
	}
	for i, c := range cols {
		n := i + 1
		tok := layout.Formats[i].Token()
		b.str(nth("TTYPE", n), c.Name, "label for field")
		b.int(nth("TBCOL", n), int64(layout.TBCol[i]), "beginning column of field")
		b.str(nth("TFORM", n), tok, "Fortran-77 format of field")
		b.str(nth("TDISP", n), tok, "display format of field")
	}
	b.comment(primaryComment)

	hdr, err := b.seal()
	if err != nil {
		return nil, err
	}
	return &HDU{Header: hdr, Data: data}, nil
}

// PlanTable infers every column format and lays the fields out left to right.
func PlanTable(cols []Column) TableLayout {
	l := TableLayout{
		Formats: make([]ColumnFormat, len(cols)),
		Widths:  make([]int, len(cols)),
		TBCol:   make([]int, len(cols)),
	}
	for i, c := range cols {
		l.Formats[i] = InferFormat(c)
		l.Widths[i] = l.Formats[i].Width + 1
		l.TBCol[i] = l.RowWidth + 1
		l.RowWidth += l.Widths[i]
	}
	return l
}

// appendField right-pads or truncates s to exactly width bytes.
func appendField(dst []byte, s string, width int) []byte {
	if len(s) >= width {
		return append(dst, s[:width]...)
	}
	dst = append(dst, s...)
	return append(dst, strings.Repeat(" ", width-len(s))...)
}

func checkASCII(c Column) error {
	if err := checkHeaderString(c.Name); err != nil {
		return columnError(err, c.Name, "column name")
	}
	if c.kind != KindString && c.kind != KindChar {
		return nil
	}
	for row, s := range c.cells {
		for i := 0; i < len(s); i++ {
			if s[i] > 127 {
				return columnError(ErrNonASCII, c.Name, fmt.Sprintf("row %d", row))
			}
		}
	}
	return nil
}

// checkExtName validates an EXTNAME value before any record is built.
func checkExtName(name string) error {
	if name == "" {
		return nil
	}
	if err := checkHeaderString(name); err != nil {
		return &ContractError{Err: err, Detail: "EXTNAME"}
	}
	return nil
}
