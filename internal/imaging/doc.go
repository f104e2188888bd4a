// Package imaging loads raster images and samples rectangular regions of
// them into the byte sequence a region key is derived from.
//
// # Coordinate System
//
// Coordinates are 0-based and relative to the top-left pixel of the image,
// whatever its Bounds().Min happens to be. X increases rightward and Y
// increases downward. A region is given by its origin and size.
//
// # Sample Layout
//
// [Sample] walks the region row by row, top to bottom, and each row left to
// right. Every pixel contributes three bytes, R then G then B, as 8-bit
// non-premultiplied values. Alpha is never sampled, so an opaque PNG and the
// same pixels stored as JPEG or BMP produce identical samples.
//
// # Formats
//
// [Loader] decodes PNG, JPEG and GIF (through github.com/disintegration/imaging)
// plus BMP, TIFF and WebP (golang.org/x/image), honouring EXIF orientation.
package imaging
