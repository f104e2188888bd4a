package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Loader reads images from disk.
//
// Loader keeps no state between calls: every Load opens, decodes and closes
// its own file handle, so one Loader may be shared by concurrent callers.
type Loader struct {
	// AutoOrientation applies the EXIF orientation tag of JPEG files
	// before the image is returned.
	AutoOrientation bool
}

// NewLoader returns a Loader with EXIF auto-orientation enabled.
func NewLoader() *Loader {
	return &Loader{AutoOrientation: true}
}

// Load decodes the image at path.
//
// # Errors
//
//   - Returns a *LoadError if the file does not exist or cannot be read
//   - Returns a *LoadError if the file is not in a registered format
func (l *Loader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(l.AutoOrientation))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}
