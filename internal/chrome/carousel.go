package chrome

import (
	"sync"
	"time"
)

// Carousel advances through count slides on a fixed interval.
// Hover pauses it; Leave restarts a full interval, elapsed time is not kept.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	timer    *time.Timer
	gen      int
	running  bool
	paused   bool
	notify   chan int
}

// NewCarousel creates a stopped carousel
func NewCarousel(count int, interval time.Duration) *Carousel {
	return &Carousel{
		count:    count,
		interval: interval,
		notify:   make(chan int, 1),
	}
}

// Start begins auto-advancing
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.paused = false
	c.schedule()
}

// Stop halts auto-advancing for good
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.cancel()
}

// Hover pauses while the pointer is over the carousel
func (c *Carousel) Hover() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
	c.cancel()
}

// Leave resumes with a freshly started interval
func (c *Carousel) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.schedule()
}

// Paused reports whether a hover is holding the carousel
func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Go jumps to slide i, wrapping
func (c *Carousel) Go(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.goTo(i)
}

// Index returns the current slide
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Changes delivers the slide index after each automatic advance.
// Only the latest index is buffered.
func (c *Carousel) Changes() <-chan int {
	return c.notify
}

// goTo must be called with mu held
func (c *Carousel) goTo(i int) {
	if c.count <= 0 {
		c.index = 0
		return
	}
	c.index = ((i % c.count) + c.count) % c.count
}

// schedule must be called with mu held
func (c *Carousel) schedule() {
	c.cancel()
	if !c.running || c.paused || c.count <= 0 {
		return
	}
	gen := c.gen
	c.timer = time.AfterFunc(c.interval, func() { c.tick(gen) })
}

// cancel must be called with mu held. Bumping gen invalidates a timer that
// already fired but has not taken the lock yet.
func (c *Carousel) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Carousel) tick(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.goTo(c.index + 1)
	select {
	case <-c.notify:
	default:
	}
	c.notify <- c.index
	c.schedule()
}
