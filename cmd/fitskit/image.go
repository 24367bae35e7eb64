package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samcharles93/fitskit/internal/logger"
	"github.com/samcharles93/fitskit/pkg/fits"
	"github.com/urfave/cli/v3"
)

func imageCmd() *cli.Command {
	var (
		out      string
		force    bool
		kindName string
		shapeArg string
		fill     float64
		ramp     bool
		primary  bool
		extName  string
	)

	return &cli.Command{
		Name:  "image",
		Usage: "Write a FITS file holding a filled image array",
		Flags: append(outputFlags(&out, &force),
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "element kind (int8, uint8, int16, uint16, int32, uint32, int64, uint64, float32, float64)",
				Value:       "float32",
				Destination: &kindName,
			},
			&cli.StringFlag{
				Name:        "shape",
				Usage:       "comma-separated axis lengths, NAXIS1 first",
				Required:    true,
				Destination: &shapeArg,
			},
			&cli.Float64Flag{Name: "fill", Usage: "value written to every element", Destination: &fill},
			&cli.BoolFlag{Name: "ramp", Usage: "fill elements with their flat index instead of --fill", Destination: &ramp},
			&cli.BoolFlag{Name: "primary", Usage: "store the array in the primary HDU", Destination: &primary},
			&cli.StringFlag{Name: "extname", Usage: "EXTNAME of the image extension", Destination: &extName},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			log := logger.FromContext(ctx)
			applyOutputConfig(c, cfg, &force)

			kind, ok := fits.ParseKind(kindName)
			if !ok || !kind.Numeric() {
				return cli.Exit(fmt.Sprintf("error: unknown image kind %q", kindName), 1)
			}
			shape, err := parseShape(shapeArg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if primary && extName != "" {
				return cli.Exit("error: --extname requires an image extension", 1)
			}
			outPath, err := resolveOut(out, force)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			arr, err := fits.ArrayFromValues(kind, shape, fillValues(shape, fill, ramp))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			hdus, err := imageHDUs(arr, primary, extName)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			n, err := writeFITS(outPath, hdus...)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: write %s: %v", outPath, err), 1)
			}
			log.Info("wrote image", "path", outPath, "kind", kind, "shape", shape, "bytes", n)
			return nil
		},
	}
}

func fillValues(shape []int, fill float64, ramp bool) []float64 {
	n := 1
	for _, d := range shape {
		n *= d
	}
	values := make([]float64, n)
	for i := range values {
		if ramp {
			values[i] = float64(i)
		} else {
			values[i] = fill
		}
	}
	return values
}

func imageHDUs(arr *fits.Array, primary bool, extName string) ([]*fits.HDU, error) {
	if primary {
		h, err := fits.BuildPrimary(arr)
		if err != nil {
			return nil, err
		}
		return []*fits.HDU{h}, nil
	}
	p, err := fits.BuildPrimary(nil)
	if err != nil {
		return nil, err
	}
	var opts []fits.BuildOption
	if extName != "" {
		opts = append(opts, fits.WithExtName(extName))
	}
	img, err := fits.BuildImage(arr, opts...)
	if err != nil {
		return nil, err
	}
	return []*fits.HDU{p, img}, nil
}

// writeFITS streams hdus into path and reports the bytes written.
func writeFITS(path string, hdus ...*fits.HDU) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := fits.NewWriter(f)
	for _, h := range hdus {
		if err := w.WriteHDU(h); err != nil {
			_ = f.Close()
			return 0, err
		}
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return 0, err
	}
	return w.Written(), f.Close()
}
