package fits

// HDU is a header plus its data segment.
//
// For HDUs produced by the builders Data is the unpadded payload and Array, when
// set, is the caller's input left untouched. For HDUs returned by ReadHDUs, Data
// is trimmed to the size the header declares and Offset is the header's position
// in the stream.
type HDU struct {
	Header *Header
	Data   []byte
	Array  *Array
	Offset int64
}

// Type returns "PRIMARY" for a SIMPLE header, the XTENSION value otherwise,
// or "" when neither keyword leads the header.
func (h *HDU) Type() string {
	if h == nil || h.Header.Len() == 0 {
		return ""
	}
	first := h.Header.Records[0]
	switch string(first[:keywordWidth]) {
	case markSimple:
		return "PRIMARY"
	case markXtension:
		if v, ok := first.Value(); ok {
			return v.Raw
		}
	}
	return ""
}

// padByte is the fill used after the data segment: blanks for ASCII tables, zeros otherwise.
func (h *HDU) padByte() byte {
	if h.Type() == ExtTable {
		return ' '
	}
	return 0
}
