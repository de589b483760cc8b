package meshgraph

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point set out of an SVG document. Every <circle> contributes its
// center and every <polygon> its points, in document order. This is not a
// full SVG reader: transforms and units are ignored.
//
// SVG's y axis points down, so y is negated to keep the drawing's winding.
func ReadSVGPoints(r io.Reader) ([]Vector2, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Vector2
	var walk func(element *svgparser.Element) error
	walk = func(element *svgparser.Element) error {
		switch element.Name {
		case "circle":
			p, err := parseCircle(element)
			if err != nil {
				return err
			}
			points = append(points, p)
		case "polygon", "polyline":
			polygon, err := parsePointList(element.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", element.Name)
			}
			points = append(points, polygon...)
		}
		for _, child := range element.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

func parseCircle(element *svgparser.Element) (Vector2, error) {
	x, err := parseCoordinate(element.Attributes["cx"])
	if err != nil {
		return Vector2{}, errors.Wrap(err, "circle cx")
	}
	y, err := parseCoordinate(element.Attributes["cy"])
	if err != nil {
		return Vector2{}, errors.Wrap(err, "circle cy")
	}
	return Vector2{X: x, Y: -y}, nil
}

// Missing coordinates default to zero, as in SVG.
func parseCoordinate(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}

// Parse "x1,y1 x2,y2 ..." (commas and whitespace are interchangeable).
func parsePointList(value string) ([]Vector2, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", value)
	}
	points := make([]Vector2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Vector2{X: x, Y: -y})
	}
	return points, nil
}
