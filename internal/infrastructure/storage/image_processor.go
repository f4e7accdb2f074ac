package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"github.com/disintegration/imaging"
)

// Longest edge kept after downscaling. Marketing pages never render larger.
const maxDimension = 2000

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	return &ImageProcessor{MaxSize: maxSize}
}

// Validate checks the size ceiling and that the payload decodes as a
// supported image. Returns the sniffed format.
func (p *ImageProcessor) Validate(data []byte) (string, error) {
	if int64(len(data)) > p.MaxSize {
		return "", &MediaError{
			Reason: ReasonOversize,
			Err:    fmt.Errorf("file exceeds %d MiB", p.MaxSize/(1024*1024)),
		}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", &MediaError{Reason: ReasonBadType, Err: fmt.Errorf("not an image: %w", err)}
	}

	switch format {
	case "jpeg", "png", "gif":
		return format, nil
	default:
		return "", &MediaError{Reason: ReasonBadType, Err: fmt.Errorf("format %s not allowed", format)}
	}
}

// Prepare validates the payload and downscales oversized jpeg/png images to
// maxDimension on the longest edge. GIFs pass through untouched (resizing
// would drop animation frames).
func (p *ImageProcessor) Prepare(data []byte) ([]byte, string, error) {
	format, err := p.Validate(data)
	if err != nil {
		return nil, "", err
	}

	if format == "gif" {
		return data, format, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &MediaError{Reason: ReasonBadType, Err: err}
	}
	if cfg.Width <= maxDimension && cfg.Height <= maxDimension {
		return data, format, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &MediaError{Reason: ReasonBadType, Err: err}
	}

	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	buf := new(bytes.Buffer)
	switch format {
	case "png":
		err = png.Encode(buf, resized)
	default:
		err = jpeg.Encode(buf, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, "", fmt.Errorf("cannot re-encode image: %w", err)
	}

	return buf.Bytes(), format, nil
}

// Extension returns the object-key extension for a sniffed format.
func Extension(format string) string {
	switch format {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
