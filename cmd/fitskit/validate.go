package main

import (
	"context"
	"fmt"
	"io"

	"github.com/samcharles93/fitskit/internal/logger"
	"github.com/samcharles93/fitskit/pkg/fits"
	"github.com/urfave/cli/v3"
)

type validateOutput struct {
	File       string             `json:"file"`
	OK         bool               `json:"ok"`
	Passed     []bool             `json:"passed"`
	Results    []fits.CheckResult `json:"results"`
	ParseError string             `json:"parse_error,omitempty"`
}

func validateCmd() *cli.Command {
	var (
		path   string
		asJSON bool
	)

	return &cli.Command{
		Name:  "validate",
		Usage: "Run structural checks on a FITS file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "path to FITS file",
				Destination: &path,
				Required:    true,
			},
			&cli.BoolFlag{Name: "json", Usage: "print the report as JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log := logger.FromContext(ctx).With("file", path)

			f, err := fits.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open %s: %v", path, err), 1)
			}
			defer func() { _ = f.Close() }()

			rep, parseErr := f.Validate(log)
			out := validateOutput{
				File:    path,
				OK:      rep.OK() && parseErr == nil,
				Passed:  rep.Passed(),
				Results: rep.Results,
			}
			if parseErr != nil {
				out.ParseError = parseErr.Error()
			}

			w := stdout(c)
			if asJSON {
				if err := writeJSON(w, out); err != nil {
					return err
				}
			} else {
				printReport(w, out)
			}
			if !out.OK {
				return cli.Exit("validation failed", 1)
			}
			return nil
		},
	}
}

func printReport(w io.Writer, out validateOutput) {
	for _, res := range out.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		scope := "file"
		if res.HDU > 0 {
			scope = fmt.Sprintf("hdu %d", res.HDU)
		}
		_, _ = fmt.Fprintf(w, "%s  %-14s %-8s %s\n", status, res.Name, scope, res.Message)
	}
	if out.ParseError != "" {
		_, _ = fmt.Fprintf(w, "FAIL  %-14s %-8s %s\n", "parse", "file", out.ParseError)
	}
}
