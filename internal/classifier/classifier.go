package classifier

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"sync"
	"time"
)

// Service decides whether an image contains a cat.
type Service interface {
	// ContainsCat reports whether a cat is visible with at least the given
	// confidence, expressed as a percentage between 0 and 100.
	ContainsCat(ctx context.Context, img image.Image, confidenceThreshold float32) (bool, error)
}

var (
	// ErrNilImage is returned when no image is supplied.
	ErrNilImage = errors.New("image is nil")
	// ErrInvalidThreshold is returned for thresholds outside [0, 100].
	ErrInvalidThreshold = errors.New("confidence threshold must be between 0 and 100")
)

// FakeService pretends to run a model: each call draws a confidence score
// uniformly from [0, 100) and reports a cat when it exceeds the threshold.
type FakeService struct {
	// rnd is the pseudo-random source; it is not safe for concurrent use.
	rnd *rand.Rand
	// mu protects rnd.
	mu sync.Mutex
}

// NewFakeService creates a fake classifier. A zero seed picks a time-based one.
func NewFakeService(seed uint64) *FakeService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &FakeService{
		rnd: rand.New(rand.NewPCG(seed, seed>>1)), //nolint:gosec // Not used for security.
	}
}

// ContainsCat returns a pseudo-random answer for the image.
func (f *FakeService) ContainsCat(ctx context.Context, img image.Image, confidenceThreshold float32) (bool, error) {
	if err := validate(ctx, img, confidenceThreshold); err != nil {
		return false, err
	}

	f.mu.Lock()
	confidence := f.rnd.Float32() * 100
	f.mu.Unlock()

	return confidence > confidenceThreshold, nil
}

// StaticService always returns the same answer.
type StaticService struct {
	// Cat is the answer returned for every image.
	Cat bool
}

// ContainsCat returns the configured answer.
func (s StaticService) ContainsCat(ctx context.Context, img image.Image, confidenceThreshold float32) (bool, error) {
	if err := validate(ctx, img, confidenceThreshold); err != nil {
		return false, err
	}

	return s.Cat, nil
}

func validate(ctx context.Context, img image.Image, confidenceThreshold float32) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("classify image: %w", err)
	}

	if img == nil {
		return ErrNilImage
	}

	if confidenceThreshold < 0 || confidenceThreshold > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, confidenceThreshold)
	}

	return nil
}
