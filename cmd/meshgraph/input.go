package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/meshgraph"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func readPoints(in io.Reader) ([]meshgraph.Vector2, error) {
	var points []meshgraph.Vector2
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (meshgraph.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return meshgraph.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return meshgraph.Vector2{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return meshgraph.Vector2{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return meshgraph.Vector2{X: x, Y: y}, nil
}

func readSVGFile(path string) ([]meshgraph.Vector2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()
	points, err := meshgraph.ReadSVGPoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return points, nil
}
