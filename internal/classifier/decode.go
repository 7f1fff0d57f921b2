package classifier

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Register the decoders accepted by DecodeImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	// MaxImageSize bounds the encoded image payload accepted by transports.
	MaxImageSize = 8 << 20
	// MaxImagePixels bounds the decoded dimensions of an image.
	MaxImagePixels = 4096 * 4096
)

var (
	// ErrImageTooLarge is returned when the payload exceeds MaxImageSize or
	// its header declares more than MaxImagePixels pixels.
	ErrImageTooLarge = errors.New("image exceeds maximum size")
	// ErrUnsupportedImage is returned when the payload is not a PNG, JPEG or GIF image.
	ErrUnsupportedImage = errors.New("unsupported image")
)

// DecodeImage decodes PNG, JPEG or GIF bytes received from a transport.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNilImage
	}

	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	return img, nil
}
