// Package rotator cycles through the home page hero images on a fixed period.
package rotator

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultPeriod is how long each image is shown.
const DefaultPeriod = 5000 * time.Millisecond

// ErrNoImages is returned when a rotator is created without any images.
var ErrNoImages = errors.New("rotator: at least one image is required")

// Rotator holds an ordered list of image references and the index of the one
// currently shown. The index only moves forward, wrapping modulo len(images).
type Rotator struct {
	images []string
	period time.Duration

	mu      sync.Mutex
	index   int
	cancel  context.CancelFunc
	done    chan struct{}
	changes chan int
}

// New creates a Rotator. A non-positive period falls back to DefaultPeriod.
func New(images []string, period time.Duration) (*Rotator, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Rotator{
		images:  append([]string(nil), images...),
		period:  period,
		changes: make(chan int, 1),
	}, nil
}

// Image returns the image at index i, wrapping past the end.
func (r *Rotator) Image(i int) string {
	n := len(r.images)
	return r.images[((i%n)+n)%n]
}

// Len returns the number of images.
func (r *Rotator) Len() int { return len(r.images) }

// Period returns the tick period.
func (r *Rotator) Period() time.Duration { return r.period }

// Index returns the current zero-based index.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Current returns the image at the current index.
func (r *Rotator) Current() string {
	return r.Image(r.Index())
}

// Tick advances to the next image and returns the new index.
func (r *Rotator) Tick() int {
	r.mu.Lock()
	r.index = (r.index + 1) % len(r.images)
	idx := r.index
	r.mu.Unlock()

	// Keep only the latest index for a slow reader.
	select {
	case r.changes <- idx:
	default:
		select {
		case <-r.changes:
		default:
		}
		select {
		case r.changes <- idx:
		default:
		}
	}
	return idx
}

// Changes delivers the new index after each tick. Only the most recent
// unread index is buffered.
func (r *Rotator) Changes() <-chan int { return r.changes }

// Running reports whether the timer is active.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Start begins advancing the index every period until ctx is cancelled or
// Stop is called. Calling Start on a running rotator is a no-op.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go r.run(ctx, done)
}

func (r *Rotator) run(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(r.period)
	defer func() {
		ticker.Stop()
		// A parent cancellation ends the run without Stop; clear our slot so
		// the rotator can be started again.
		r.mu.Lock()
		if r.done == done {
			r.cancel()
			r.cancel, r.done = nil, nil
		}
		r.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Stop halts the timer and waits for it to exit. It is safe to call on a
// rotator that was never started.
func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
