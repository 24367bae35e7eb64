package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samcharles93/fitskit/internal/logger"
	"github.com/samcharles93/fitskit/pkg/fits"
	"github.com/urfave/cli/v3"
)

func tableCmd() *cli.Command {
	var (
		out     string
		force   bool
		csvPath string
		extName string
	)

	return &cli.Command{
		Name:  "table",
		Usage: "Convert a CSV file into a FITS ASCII table",
		Flags: append(outputFlags(&out, &force),
			&cli.StringFlag{
				Name:        "csv",
				Usage:       "path to CSV file; the first row names the columns",
				Required:    true,
				Destination: &csvPath,
			},
			&cli.StringFlag{Name: "extname", Usage: "EXTNAME of the table extension", Destination: &extName},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			log := logger.FromContext(ctx)
			applyOutputConfig(c, cfg, &force)

			in, err := os.Open(csvPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open %s: %v", csvPath, err), 1)
			}
			cols, err := readCSVColumns(in)
			_ = in.Close()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %s: %v", csvPath, err), 1)
			}

			outPath, err := resolveOut(out, force)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			opts := []fits.BuildOption{fits.WithLogger(log)}
			if extName != "" {
				opts = append(opts, fits.WithExtName(extName))
			}
			primary, err := fits.BuildPrimary(nil)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			table, err := fits.BuildTable(cols, opts...)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			n, err := writeFITS(outPath, primary, table)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: write %s: %v", outPath, err), 1)
			}
			log.Info("wrote table", "path", outPath, "columns", len(cols), "rows", cols[0].Len(), "bytes", n)
			return nil
		},
	}
}
