package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrRegionOutOfBounds is returned when a region is not fully contained
	// in the image.
	ErrRegionOutOfBounds = errors.New("region out of bounds")

	// ErrEmptyRegion is returned for a region with zero width or height.
	ErrEmptyRegion = errors.New("empty region")

	// ErrImageLoad is matched by every [LoadError].
	ErrImageLoad = errors.New("image load failed")
)

// LoadError reports a missing, unreadable or undecodable image file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *LoadError) Is(target error) bool {
	return target == ErrImageLoad
}
