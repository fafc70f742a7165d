package adapter

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
)

// GIFDecoder defines an interface for decoding GIF data to enable mocking
//
//go:generate mockgen -source=image.go -destination=../mocks/image.go -package=mocks -mock_names=GIFDecoder=MockGIFDecoder,ImageEncoder=MockImageEncoder
type GIFDecoder interface {
	// DecodeFirstFrame decodes the first frame of GIF data.
	// Truncated data is acceptable as long as the first frame is complete.
	DecodeFirstFrame(data []byte) (image.Image, error)
}

// ImageEncoder defines an interface for encoding images
type ImageEncoder interface {
	// EncodePNG encodes an image to PNG format
	EncodePNG(w io.Writer, img image.Image) error
	// EncodeJPEG encodes an image to JPEG format with specified quality
	EncodeJPEG(w io.Writer, img image.Image, quality int) error
}

// RealGIFDecoder implements GIFDecoder using the standard image/gif package
type RealGIFDecoder struct{}

// NewGIFDecoder creates a new real GIF decoder
func NewGIFDecoder() GIFDecoder {
	return &RealGIFDecoder{}
}

// DecodeFirstFrame decodes the first frame of GIF data
func (d *RealGIFDecoder) DecodeFirstFrame(data []byte) (image.Image, error) {
	return gif.Decode(bytes.NewReader(data))
}

// RealImageEncoder implements ImageEncoder using standard library
type RealImageEncoder struct{}

// NewImageEncoder creates a new real image encoder
func NewImageEncoder() ImageEncoder {
	return &RealImageEncoder{}
}

// EncodePNG encodes an image to PNG format
func (e *RealImageEncoder) EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeJPEG encodes an image to JPEG format with specified quality
func (e *RealImageEncoder) EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}
