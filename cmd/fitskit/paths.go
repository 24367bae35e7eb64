package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var errOutputExists = errors.New("output file exists")

// resolveOut cleans the output path, creates its directory, and refuses to
// replace an existing file unless force is set.
func resolveOut(outFlag string, force bool) (string, error) {
	outFlag = strings.TrimSpace(outFlag)
	if outFlag == "" {
		return "", errors.New("--out is required")
	}
	outPath := filepath.Clean(outFlag)
	info, err := os.Stat(outPath)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("output path %s is a directory", outPath)
	case err == nil && !force:
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", errOutputExists, outPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	return outPath, nil
}

// parseShape parses a comma-separated axis list such as "4,3".
func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("shape is empty")
	}
	parts := strings.Split(s, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid axis %q in shape %q", p, s)
		}
		if n <= 0 {
			return nil, fmt.Errorf("axis %d in shape %q must be positive", n, s)
		}
		shape = append(shape, n)
	}
	return shape, nil
}
