package camera

import (
	"context"
	"image"
	"sync"

	"fieldservice/internal/domain/service"
)

// ChannelSource is a frame source fed by the caller, e.g. frames uploaded over HTTP.
type ChannelSource struct {
	frames chan image.Image
	ended  chan struct{}
	done   chan struct{}

	mu       sync.Mutex
	isEnded  bool
	released bool
}

var _ service.FrameSource = (*ChannelSource)(nil)

// NewChannelSource creates a source buffering up to buffer pushed frames.
func NewChannelSource(buffer int) *ChannelSource {
	return &ChannelSource{
		frames: make(chan image.Image, buffer),
		ended:  make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// NewStaticSource returns a source that yields the given frames and then ends.
func NewStaticSource(frames ...image.Image) *ChannelSource {
	s := NewChannelSource(len(frames))
	for _, f := range frames {
		s.frames <- f
	}
	s.End()

	return s
}

// Push offers a frame to the scanner. It returns false once the source is
// released or ended, or when ctx is done first.
func (s *ChannelSource) Push(ctx context.Context, frame image.Image) bool {
	select {
	case <-s.done:
		return false
	case <-s.ended:
		return false
	default:
	}

	select {
	case s.frames <- frame:
		return true
	case <-s.done:
		return false
	case <-s.ended:
		return false
	case <-ctx.Done():
		return false
	}
}

// End marks that no more frames will be pushed. Buffered frames are still delivered.
func (s *ChannelSource) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isEnded {
		s.isEnded = true
		close(s.ended)
	}
}

// Frames hands out the pushed frames until End, Close or ctx cancellation.
func (s *ChannelSource) Frames(ctx context.Context) (<-chan image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrReleased
	}

	out := make(chan image.Image)
	go func() {
		defer close(out)
		for {
			var frame image.Image
			select {
			case frame = <-s.frames:
			case <-s.ended:
				// drain what was buffered before End
				select {
				case frame = <-s.frames:
				default:
					return
				}
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}

			select {
			case out <- frame:
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}
		}
	}()

	return out, nil
}

// Close releases the source. It is safe to call more than once.
func (s *ChannelSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.released {
		s.released = true
		close(s.done)
	}

	return nil
}

// Released reports whether Close has been called.
func (s *ChannelSource) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.released
}
