package fits

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one 80-byte header record.
type Record [RecordSize]byte

// blankRecord pads a header to a block boundary.
var blankRecord = newRecord("")

// newRecord left-justifies s in a blank record, truncating anything past column 80.
func newRecord(s string) Record {
	var r Record
	for i := range r {
		r[i] = ' '
	}
	copy(r[:], s)
	return r
}

// valueRecord writes a fixed-format value right-justified in columns 11-30.
func valueRecord(key, value, comment string) Record {
	s := fmt.Sprintf("%-*s= %*s", keywordWidth, key, valueWidth, value)
	if comment != "" {
		s += " / " + comment
	}
	return newRecord(s)
}

func intRecord(key string, v int64, comment string) Record {
	return valueRecord(key, strconv.FormatInt(v, 10), comment)
}

func boolRecord(key string, v bool, comment string) Record {
	if v {
		return valueRecord(key, "T", comment)
	}
	return valueRecord(key, "F", comment)
}

// stringRecord quotes v starting in column 11, doubling embedded quotes and
// padding the quoted text to at least 8 characters.
func stringRecord(key, v, comment string) Record {
	quoted := "'" + fmt.Sprintf("%-8s", strings.ReplaceAll(v, "'", "''")) + "'"
	s := fmt.Sprintf("%-*s= %-*s", keywordWidth, key, valueWidth, quoted)
	if comment != "" {
		s += " / " + comment
	}
	return newRecord(s)
}

// checkHeaderString reports whether v can be written as a single quoted value:
// printable ASCII only and no longer than MaxStringLen once quotes are doubled.
func checkHeaderString(v string) error {
	for i := 0; i < len(v); i++ {
		if v[i] < 32 || v[i] > 126 {
			return fmt.Errorf("%w: byte 0x%02x at position %d", ErrNonASCII, v[i], i)
		}
	}
	if n := len(v) + strings.Count(v, "'"); n > MaxStringLen {
		return fmt.Errorf("%w: %d characters, limit %d", ErrValueTooLong, n, MaxStringLen)
	}
	return nil
}

func commentRecord(text string) Record {
	return newRecord("COMMENT " + text)
}

func endRecord() Record {
	return newRecord("END")
}

// Keyword returns the record's keyword with trailing blanks removed.
func (r Record) Keyword() string {
	return strings.TrimRight(string(r[:keywordWidth]), " ")
}

// IsEnd reports whether r is the END record.
func (r Record) IsEnd() bool {
	return string(r[:keywordWidth]) == markEnd
}

func (r Record) String() string {
	return string(r[:])
}

// Value is the parsed value field of a "KEYWORD = value / comment" record.
type Value struct {
	Raw     string
	Comment string
	Quoted  bool
}

// Value parses the value indicator and value field. ok is false for
// commentary records and records without "= " in columns 9-10.
func (r Record) Value() (v Value, ok bool) {
	if r[8] != '=' || r[9] != ' ' {
		return Value{}, false
	}
	rest := strings.TrimLeft(string(r[10:]), " ")
	if strings.HasPrefix(rest, "'") {
		var b strings.Builder
		i := 1
		for i < len(rest) {
			if rest[i] == '\'' {
				if i+1 < len(rest) && rest[i+1] == '\'' {
					b.WriteByte('\'')
					i += 2
					continue
				}
				break
			}
			b.WriteByte(rest[i])
			i++
		}
		v.Raw = strings.TrimRight(b.String(), " ")
		v.Quoted = true
		if i < len(rest) {
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			v.Comment = strings.TrimSpace(rest[j+1:])
		}
		return v, true
	}
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		v.Comment = strings.TrimSpace(rest[j+1:])
		rest = rest[:j]
	}
	v.Raw = strings.TrimSpace(rest)
	return v, true
}

// Int parses an integer value.
func (v Value) Int() (int64, bool) {
	if v.Quoted {
		return 0, false
	}
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	return n, err == nil
}

// Float parses a real value, accepting the Fortran D exponent.
func (v Value) Float() (float64, bool) {
	if v.Quoted {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(v.Raw, "D", "E", 1), 64)
	return f, err == nil
}

// Bool parses a logical value.
func (v Value) Bool() (bool, bool) {
	if v.Quoted {
		return false, false
	}
	switch v.Raw {
	case "T":
		return true, true
	case "F":
		return false, true
	}
	return false, false
}

// Str returns the unquoted text of a string value.
func (v Value) Str() (string, bool) {
	return v.Raw, v.Quoted
}
