package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/samcharles93/fitskit/internal/logger"
	"github.com/samcharles93/fitskit/internal/version"
	"github.com/samcharles93/fitskit/pkg/fits"
)

const defaultMaxBodyBytes = 64 << 20

type Server struct {
	store   *ReportStore
	log     logger.Logger
	clock   func() time.Time
	maxBody int64
}

type Option func(*Server)

// WithMaxBody caps the size of FITS request bodies.
func WithMaxBody(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

func NewServer(store *ReportStore, log logger.Logger, opts ...Option) *Server {
	if store == nil {
		store = NewReportStore(0)
	}
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		store:   store,
		log:     log,
		clock:   time.Now,
		maxBody: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)

	// Reading
	e.POST("/v1/validate", s.handleValidate)
	e.POST("/v1/inspect", s.handleInspect)
	e.GET("/v1/reports/:id", s.handleGetReport)
	e.DELETE("/v1/reports/:id", s.handleDeleteReport)

	// Building
	e.POST("/v1/tables", s.handleCreateTable)
	e.POST("/v1/images", s.handleCreateImage)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.String(),
	})
}

func (s *Server) handleValidate(c *echo.Context) error {
	raw, err := readBody(c.Request().Body, s.maxBody)
	if err != nil {
		return writeErr(c, err)
	}
	id := newReportID()
	log := s.log.With("report", id)

	rs := bytes.NewReader(raw)
	hdus, parseErr := fits.ReadWholeBlocks(rs)
	rep := fits.Validate(rs, hdus, log)

	resp := ValidateResponse{
		ID:        id,
		Object:    "fits.report",
		CreatedAt: s.clock().Unix(),
		Bytes:     len(raw),
		OK:        rep.OK() && parseErr == nil,
		Passed:    rep.Passed(),
		Results:   rep.Results,
	}
	if parseErr != nil {
		resp.ParseError = parseErr.Error()
		log.Warn("parse failed", "error", parseErr)
	}
	s.store.Put(resp)
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleInspect(c *echo.Context) error {
	raw, err := readBody(c.Request().Body, s.maxBody)
	if err != nil {
		return writeErr(c, err)
	}
	rs := bytes.NewReader(raw)
	layout, err := fits.ScanLayout(rs)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	hdus, err := fits.ReadHDUs(rs)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, NewInspectResponse(layout, hdus))
}

// NewInspectResponse summarises a parsed stream. Records stop at END.
func NewInspectResponse(l fits.Layout, hdus []*fits.HDU) InspectResponse {
	resp := InspectResponse{Length: l.Length, HDUs: make([]HDUSummary, 0, len(hdus))}
	for i, h := range hdus {
		sum := HDUSummary{
			Index:     i + 1,
			Type:      h.Type(),
			Offset:    l.Headers[i],
			DataBytes: len(h.Data),
		}
		if i < len(l.Data) {
			sum.DataOffset = l.Data[i]
		}
		if i < len(l.Ends) {
			sum.End = l.Ends[i]
		}
		for _, rec := range h.Header.Records {
			sum.Records = append(sum.Records, rec.String())
			if rec.IsEnd() {
				break
			}
		}
		resp.HDUs = append(resp.HDUs, sum)
	}
	return resp
}

func (s *Server) handleGetReport(c *echo.Context) error {
	resp, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "report not found")
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDeleteReport(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "report not found")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":      id,
		"object":  "fits.report",
		"deleted": true,
	})
}

func (s *Server) handleCreateTable(c *echo.Context) error {
	req, err := decodeJSON[TableRequest](c.Request().Body)
	if err != nil {
		return writeErr(c, err)
	}
	cols, err := req.columns()
	if err != nil {
		return writeErr(c, err)
	}
	var opts []fits.BuildOption
	if req.ExtName != "" {
		opts = append(opts, fits.WithExtName(req.ExtName))
	}
	opts = append(opts, fits.WithLogger(s.log))

	primary, err := fits.BuildPrimary(nil)
	if err != nil {
		return writeErr(c, err)
	}
	table, err := fits.BuildTable(cols, opts...)
	if err != nil {
		return writeErr(c, err)
	}
	return s.writeFITS(c, primary, table)
}

func (s *Server) handleCreateImage(c *echo.Context) error {
	req, err := decodeJSON[ImageRequest](c.Request().Body)
	if err != nil {
		return writeErr(c, err)
	}
	kind, ok := fits.ParseKind(req.Kind)
	if !ok {
		return writeBadRequest(c, "unknown kind "+req.Kind)
	}
	arr, err := fits.ArrayFromValues(kind, req.Shape, req.Data)
	if err != nil {
		return writeErr(c, err)
	}
	if req.Primary {
		if req.ExtName != "" {
			return writeBadRequest(c, "extname requires an image extension")
		}
		primary, err := fits.BuildPrimary(arr)
		if err != nil {
			return writeErr(c, err)
		}
		return s.writeFITS(c, primary)
	}

	var opts []fits.BuildOption
	if req.ExtName != "" {
		opts = append(opts, fits.WithExtName(req.ExtName))
	}
	primary, err := fits.BuildPrimary(nil)
	if err != nil {
		return writeErr(c, err)
	}
	image, err := fits.BuildImage(arr, opts...)
	if err != nil {
		return writeErr(c, err)
	}
	return s.writeFITS(c, primary, image)
}

func (s *Server) writeFITS(c *echo.Context, hdus ...*fits.HDU) error {
	raw, err := fits.Encode(hdus...)
	if err != nil {
		s.log.Error("encode failed", "error", err)
		return writeErr(c, err)
	}
	return c.Blob(http.StatusOK, mimeFITS, raw)
}

// columns converts the request into builder columns. Exactly one value list
// must be set per column.
func (r TableRequest) columns() ([]fits.Column, error) {
	if len(r.Columns) == 0 {
		return nil, fits.ErrNoColumns
	}
	cols := make([]fits.Column, 0, len(r.Columns))
	for _, cv := range r.Columns {
		var (
			col fits.Column
			set int
		)
		if cv.Ints != nil {
			col, set = fits.NewColumn(cv.Name, cv.Ints), set+1
		}
		if cv.Floats != nil {
			col, set = fits.NewColumn(cv.Name, cv.Floats), set+1
		}
		if cv.Strings != nil {
			col, set = fits.NewColumn(cv.Name, cv.Strings), set+1
		}
		if cv.Bools != nil {
			col, set = fits.NewColumn(cv.Name, cv.Bools), set+1
		}
		if cv.Chars != "" {
			col, set = fits.NewCharColumn(cv.Name, []rune(cv.Chars)), set+1
		}
		switch set {
		case 0:
			return nil, newInvalidRequest("column " + cv.Name + " has no values")
		case 1:
		default:
			return nil, newInvalidRequest("column " + cv.Name + " sets more than one value list")
		}
		cols = append(cols, col)
	}
	return cols, nil
}
