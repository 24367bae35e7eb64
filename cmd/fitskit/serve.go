package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/samcharles93/fitskit/internal/api"
	"github.com/samcharles93/fitskit/internal/logger"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		reportLimit int
		maxBody     int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the FITS REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.IntFlag{
				Name:        "report-limit",
				Usage:       "number of validation reports kept for GET /v1/reports/:id",
				Value:       256,
				Destination: &reportLimit,
			},
			&cli.Int64Flag{
				Name:        "max-body",
				Usage:       "largest accepted FITS request body in bytes",
				Value:       64 << 20,
				Destination: &maxBody,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyServeConfig(cmd, cfg, &addr, &reportLimit, &maxBody)
			log := logger.FromContext(ctx)

			store := api.NewReportStore(reportLimit)
			server := api.NewServer(store, log.With("component", "api"), api.WithMaxBody(maxBody))
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", addr)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
