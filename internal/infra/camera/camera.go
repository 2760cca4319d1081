// Package camera provides frame sources for QR capture.
package camera

import (
	"bytes"
	"context"
	"image"
	// decoders for the formats a phone camera or scanner upload produces
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrReleased is returned when a released source is acquired again.
var ErrReleased = errors.New("frame source already released")

// FileSource replays still images as camera frames, in order.
type FileSource struct {
	paths []string

	mu       sync.Mutex
	acquired bool
	released bool
	stop     context.CancelFunc
}

var _ service.FrameSource = (*FileSource)(nil)

// NewFileSource creates a source over image files.
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{paths: paths}
}

// Frames checks every file is readable before streaming, so a missing device
// fails at acquisition rather than mid-scan.
func (s *FileSource) Frames(ctx context.Context) (<-chan image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrReleased
	}
	if s.acquired {
		return nil, errors.New("frame source already acquired")
	}
	if len(s.paths) == 0 {
		return nil, errors.New("no frame files given")
	}
	for _, path := range s.paths {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "open frame %s", path)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s.acquired = true
	s.stop = cancel

	frames := make(chan image.Image)
	go func() {
		defer close(frames)
		for _, path := range s.paths {
			// an unreadable file is a frame without a code
			img, _ := readImage(path)
			select {
			case frames <- img:
			case <-ctx.Done():
				return
			}
		}
	}()

	return frames, nil
}

// Close releases the source. It is safe to call more than once.
func (s *FileSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		s.stop()
	}
	s.released = true

	return nil
}

// Released reports whether Close has been called.
func (s *FileSource) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.released
}

func readImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return DecodeImage(data)
}

// DecodeImage decodes an encoded PNG, JPEG or GIF frame.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	return img, nil
}
