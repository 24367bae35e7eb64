package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samcharles93/fitskit/internal/api"
	"github.com/samcharles93/fitskit/pkg/fits"
	"github.com/urfave/cli/v3"
)

func inspectCmd() *cli.Command {
	var (
		path        string
		asJSON      bool
		showRecords bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the HDU layout and headers of a FITS file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "path to FITS file",
				Destination: &path,
				Required:    true,
			},
			&cli.BoolFlag{Name: "json", Usage: "print the layout as JSON", Destination: &asJSON},
			&cli.BoolFlag{Name: "records", Usage: "print every header record", Destination: &showRecords},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := fits.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open %s: %v", path, err), 1)
			}
			defer func() { _ = f.Close() }()

			rs := f.Reader()
			layout, err := fits.ScanLayout(rs)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: scan %s: %v", path, err), 1)
			}
			hdus, err := fits.ReadHDUs(rs)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read %s: %v", path, err), 1)
			}

			summary := api.NewInspectResponse(layout, hdus)
			w := stdout(c)
			if asJSON {
				return writeJSON(w, summary)
			}
			printLayout(w, path, summary, hdus, showRecords)
			return nil
		},
	}
}

func printLayout(w io.Writer, path string, sum api.InspectResponse, hdus []*fits.HDU, showRecords bool) {
	_, _ = fmt.Fprintf(w, "FITS Inspect: %s\n", path)
	_, _ = fmt.Fprintf(w, "Size: %s (%d blocks)\n", formatBytes(uint64(sum.Length)), sum.Length/fits.BlockSize)

	for i, h := range sum.HDUs {
		section(w, fmt.Sprintf("HDU %d: %s", h.Index, h.Type))
		rowInt(w, "header_offset", h.Offset)
		rowInt(w, "data_offset", h.DataOffset)
		rowInt(w, "end", h.End)
		row(w, "data", formatBytes(uint64(h.DataBytes)))

		hdr := hdus[i].Header
		if bitpix, ok := hdr.Int("BITPIX"); ok {
			rowInt(w, "bitpix", bitpix)
		}
		if axes, err := hdr.Axes(); err == nil {
			row(w, "shape", formatShape(axes))
		}
		if v, ok := hdr.Lookup("EXTNAME"); ok {
			row(w, "extname", v.Raw)
		}
		if n, ok := hdr.Int("TFIELDS"); ok {
			rowInt(w, "fields", n)
		}
		if showRecords {
			_, _ = fmt.Fprintln(w)
			for _, rec := range h.Records {
				_, _ = fmt.Fprintln(w, strings.TrimRight(rec, " "))
			}
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
