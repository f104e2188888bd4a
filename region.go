package pixelkey

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Region is a rectangle of an image, given by its top-left corner and its
// size in pixels. Coordinates are relative to the image's top-left pixel.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRegion returns the region with origin (x, y) and the given size.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// String formats the region as (x,y,w,h).
func (r Region) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}

// Coords returns the region as the [x, y, w, h] list used by packets.
func (r Region) Coords() []int {
	return []int{r.X, r.Y, r.Width, r.Height}
}

// rect converts r without canonicalising, so a negative size stays visible
// to the bounds check.
func (r Region) rect() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(r.X, r.Y),
		Max: image.Pt(r.X+r.Width, r.Y+r.Height),
	}
}

// regionFromCoords validates a packet's region_coords value.
func regionFromCoords(coords []int) (Region, error) {
	if len(coords) != 4 {
		return Region{}, fmt.Errorf("want 4 values, got %d", len(coords))
	}
	for _, c := range coords {
		if c < 0 {
			return Region{}, fmt.Errorf("negative value %d", c)
		}
	}
	return NewRegion(coords[0], coords[1], coords[2], coords[3]), nil
}

// ParseRegion parses "x,y,w,h" into a Region. All four values must be
// non-negative integers.
func ParseRegion(s string) (Region, error) {
	parts := strings.Split(s, ",")
	coords := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("parse region %q: %w", s, err)
		}
		coords = append(coords, n)
	}

	r, err := regionFromCoords(coords)
	if err != nil {
		return Region{}, fmt.Errorf("parse region %q: %v", s, err)
	}
	return r, nil
}
