package fits

import (
	"strconv"
	"strings"
)

// ColumnFormat is an inferred ASCII table format token {code}{width}[.{decimals}].
type ColumnFormat struct {
	Code     byte
	Width    int
	Decimals int
}

// Token renders the format as written to TFORMn and TDISPn.
func (f ColumnFormat) Token() string {
	tok := string(f.Code) + strconv.Itoa(f.Width)
	if f.Code == 'F' {
		tok += "." + strconv.Itoa(f.Decimals)
	}
	return tok
}

// InferFormat derives a column's format code from the element kind and the
// rendering of row 0 only; the width is the longest rendering over all rows.
//
// A real column whose later rows switch to exponent notation stays F while its
// width still grows to fit them.
func InferFormat(c Column) ColumnFormat {
	f := ColumnFormat{Code: c.kind.Code()}
	for _, s := range c.cells {
		f.Width = max(f.Width, len(s))
	}

	var first string
	if len(c.cells) > 0 {
		first = c.cells[0]
	}
	if (f.Code == 'E' || f.Code == 'D') && !strings.ContainsAny(first, "ep") {
		f.Code = 'F'
		if i := strings.IndexByte(first, '.'); i >= 0 {
			f.Decimals = len(first) - i - 1
		}
	}
	return f
}
