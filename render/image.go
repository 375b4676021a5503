// Package render turns engine pixel buffers into standard library
// images and writes them to disk.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ToImage wraps an engine buffer as an image.RGBA without copying.
// The engine's buffer layout (row-major RGBA8, 4 bytes per pixel, no
// padding, top-left origin) is exactly image.RGBA with a stride of
// width*4, so the buffer is shared, not duplicated.
func ToImage(buffer []byte, width int, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(buffer) != width*height*4 {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d image (want %d)",
			len(buffer), width, height, width*height*4)
	}
	return &image.RGBA{
		Pix:    buffer,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// WritePNG encodes img to the named file.
func WritePNG(fileName string, img image.Image) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %s", fileName, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode %s - %s", fileName, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close file %s - %s", fileName, err)
	}
	return nil
}
