package fits

// BuildPrimary builds the primary HDU. A nil array yields a header with NAXIS = 0
// and no data.
func BuildPrimary(a *Array) (*HDU, error) {
	b := newHeaderBuilder()
	b.bool("SIMPLE", true, "conforms to FITS standard")

	hasData := a != nil && a.Rank() > 0
	if hasData {
		if !a.Kind().Numeric() {
			return nil, kindError(a.Kind())
		}
		b.int("BITPIX", int64(a.Kind().Bitpix()), "array data type")
		b.axes(a.shape)
		b.scaling(a.Kind())
	} else {
		b.int("BITPIX", 8, "array data type")
		b.int("NAXIS", 0, "number of data axes")
	}
	b.bool("EXTEND", true, "FITS dataset may contain extensions")
	b.comment(primaryComment)

	hdr, err := b.seal()
	if err != nil {
		return nil, err
	}
	hdu := &HDU{Header: hdr}
	if hasData {
		hdu.Array = a
		hdu.Data = a.encode()
	}
	return hdu, nil
}

// BuildImage builds an IMAGE extension around a non-empty numeric array.
func BuildImage(a *Array, opts ...BuildOption) (*HDU, error) {
	if a == nil || a.Rank() == 0 || a.Len() == 0 {
		return nil, ErrEmptyArray
	}
	if !a.Kind().Numeric() {
		return nil, kindError(a.Kind())
	}
	cfg := newBuildConfig(opts)
	if err := checkExtName(cfg.extName); err != nil {
		return nil, err
	}

	b := newHeaderBuilder()
	b.str("XTENSION", ExtImage, "Image extension")
	b.int("BITPIX", int64(a.Kind().Bitpix()), "array data type")
	b.axes(a.shape)
	b.int("PCOUNT", 0, "number of parameters")
	b.int("GCOUNT", 1, "number of groups")
	if cfg.extName != "" {
		b.str("EXTNAME", cfg.extName, "extension name")
	}
	b.scaling(a.Kind())
	b.comment(primaryComment)

	hdr, err := b.seal()
	if err != nil {
		return nil, err
	}
	return &HDU{Header: hdr, Array: a, Data: a.encode()}, nil
}
