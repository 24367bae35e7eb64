package api

import "github.com/samcharles93/fitskit/pkg/fits"

// ValidateResponse is returned by POST /v1/validate and GET /v1/reports/:id.
type ValidateResponse struct {
	ID         string             `json:"id"`
	Object     string             `json:"object"`
	CreatedAt  int64              `json:"created_at"`
	Bytes      int                `json:"bytes"`
	OK         bool               `json:"ok"`
	Passed     []bool             `json:"passed"`
	Results    []fits.CheckResult `json:"results"`
	ParseError string             `json:"parse_error,omitempty"`
}

// InspectResponse is returned by POST /v1/inspect.
type InspectResponse struct {
	Length int64        `json:"length"`
	HDUs   []HDUSummary `json:"hdus"`
}

type HDUSummary struct {
	// Index is 1-based, matching CheckResult.HDU.
	Index      int      `json:"index"`
	Type       string   `json:"type"`
	Offset     int64    `json:"offset"`
	DataOffset int64    `json:"data_offset"`
	End        int64    `json:"end"`
	DataBytes  int      `json:"data_bytes"`
	Records    []string `json:"records"`
}

// TableRequest is the body of POST /v1/tables. Each column sets exactly one
// of its value lists.
type TableRequest struct {
	ExtName string         `json:"extname,omitempty"`
	Columns []ColumnValues `json:"columns"`
}

type ColumnValues struct {
	Name    string    `json:"name"`
	Ints    []int64   `json:"ints,omitempty"`
	Floats  []float64 `json:"floats,omitempty"`
	Strings []string  `json:"strings,omitempty"`
	Chars   string    `json:"chars,omitempty"`
	Bools   []bool    `json:"bools,omitempty"`
}

// ImageRequest is the body of POST /v1/images.
type ImageRequest struct {
	Kind    string    `json:"kind"`
	Shape   []int     `json:"shape"`
	Data    []float64 `json:"data"`
	ExtName string    `json:"extname,omitempty"`
	// Primary stores the array in the primary HDU instead of an IMAGE extension.
	Primary bool `json:"primary,omitempty"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
