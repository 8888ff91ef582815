package tiles

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cardinal/qs"
)

// CaffeineTileSpec is the registry key of the caffeine tile
const CaffeineTileSpec = "caffeine"

// Infinite marks a duration that never expires.
const Infinite time.Duration = -1

// cycleWindow is how soon a second click must follow the first to advance to
// the next duration instead of switching off.
const cycleWindow = 5 * time.Second

// DefaultCaffeineDurations is the click cycle when settings provide none.
var DefaultCaffeineDurations = []time.Duration{
	5 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
	Infinite,
}

// CaffeineTile keeps the screen awake for a chosen duration.
//
// Click while off starts the first duration. Clicking again within five
// seconds steps through the remaining durations and then switches off; a
// later click switches off straight away. Long click toggles infinite.
type CaffeineTile struct {
	*qs.Base

	inhibitor Inhibitor
	durations []time.Duration
	tick      time.Duration
	now       func() time.Time

	mu        sync.Mutex
	active    bool
	index     int
	deadline  time.Time // zero while infinite
	lastClick time.Time
	cancel    context.CancelFunc
	gen       int
	closed    bool
}

// Ensure CaffeineTile implements qs.Tile
var _ qs.Tile = (*CaffeineTile)(nil)

// CaffeineOption customises a CaffeineTile.
type CaffeineOption func(*CaffeineTile)

// WithTick sets how often the countdown label refreshes.
func WithTick(d time.Duration) CaffeineOption {
	return func(c *CaffeineTile) { c.tick = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CaffeineOption {
	return func(c *CaffeineTile) { c.now = now }
}

// NewCaffeineTile returns an inactive caffeine tile. An empty durations list
// uses DefaultCaffeineDurations; non-positive entries are infinite.
func NewCaffeineTile(inhibitor Inhibitor, durations []time.Duration, opts ...CaffeineOption) *CaffeineTile {
	if len(durations) == 0 {
		durations = DefaultCaffeineDurations
	}
	ds := make([]time.Duration, len(durations))
	for i, d := range durations {
		if d <= 0 {
			d = Infinite
		}
		ds[i] = d
	}
	if inhibitor == nil {
		inhibitor = &LogInhibitor{}
	}

	c := &CaffeineTile{
		inhibitor: inhibitor,
		durations: ds,
		tick:      time.Second,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Base = qs.NewBase(CaffeineTileSpec, c.stateLocked())
	return c
}

// DurationsFromSeconds converts the persisted seconds list, -1 meaning
// infinite. Zero and other negative values are skipped.
func DurationsFromSeconds(secs []int) []time.Duration {
	out := make([]time.Duration, 0, len(secs))
	for _, s := range secs {
		if s == -1 {
			out = append(out, Infinite)
			continue
		}
		if s <= 0 {
			log.Printf("[Caffeine] ignoring invalid duration %ds", s)
			continue
		}
		out = append(out, time.Duration(s)*time.Second)
	}
	return out
}

// Click cycles durations as described on CaffeineTile.
func (c *CaffeineTile) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	now := c.now()
	switch {
	case !c.active:
		c.startLocked(0)
	case now.Sub(c.lastClick) < cycleWindow:
		if c.index+1 < len(c.durations) {
			c.startLocked(c.index + 1)
		} else {
			c.stopLocked()
		}
	default:
		c.stopLocked()
	}
	c.lastClick = now

	c.SetState(c.stateLocked())
}

// LongClick switches to infinite, or off if already infinite.
func (c *CaffeineTile) LongClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.active && c.deadline.IsZero() {
		c.stopLocked()
	} else if c.startInfiniteLocked() {
		// infinite is the end of the cycle, so a quick click after it stops
		c.index = c.infiniteIndex()
	}
	c.lastClick = c.now()

	c.SetState(c.stateLocked())
}

// Active reports whether the screen is being kept awake.
func (c *CaffeineTile) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Remaining returns time left, or Infinite. Zero when inactive.
func (c *CaffeineTile) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingLocked()
}

// Close stops any countdown, releases the inhibit and drops listeners.
func (c *CaffeineTile) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopLocked()
	c.closed = true
	c.ClearListeners()
}

func (c *CaffeineTile) startLocked(index int) {
	d := c.durations[index]
	if d == Infinite {
		if c.startInfiniteLocked() {
			c.index = index
		}
		return
	}

	if !c.acquireLocked() {
		return
	}
	c.index = index
	c.deadline = c.now().Add(d)
	c.restartCountdownLocked()
	log.Printf("[Caffeine] keeping screen awake for %s", d)
}

func (c *CaffeineTile) startInfiniteLocked() bool {
	if !c.acquireLocked() {
		return false
	}
	c.deadline = time.Time{}
	// infinite has nothing to count down
	c.cancelCountdownLocked()
	log.Println("[Caffeine] keeping screen awake indefinitely")
	return true
}

// infiniteIndex is the position of Infinite in the cycle, or the last entry
// when the cycle has no infinite step.
func (c *CaffeineTile) infiniteIndex() int {
	for i, d := range c.durations {
		if d == Infinite {
			return i
		}
	}
	return len(c.durations) - 1
}

func (c *CaffeineTile) acquireLocked() bool {
	if c.active {
		return true
	}
	if err := c.inhibitor.Acquire("caffeine tile"); err != nil {
		log.Printf("[Caffeine] failed to keep screen awake: %v", err)
		return false
	}
	c.active = true
	return true
}

func (c *CaffeineTile) stopLocked() {
	c.cancelCountdownLocked()
	if c.active {
		if err := c.inhibitor.Release(); err != nil {
			log.Printf("[Caffeine] failed to release keep awake: %v", err)
		}
		log.Println("[Caffeine] stopped")
	}
	c.active = false
	c.index = 0
	c.deadline = time.Time{}
}

func (c *CaffeineTile) cancelCountdownLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}

func (c *CaffeineTile) restartCountdownLocked() {
	c.cancelCountdownLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.countdown(ctx, c.gen)
}

// countdown refreshes the label every tick and stops the tile at the deadline
func (c *CaffeineTile) countdown(ctx context.Context, gen int) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		c.mu.Lock()
		if gen != c.gen || !c.active {
			c.mu.Unlock()
			return
		}
		if !c.now().Before(c.deadline) {
			log.Println("[Caffeine] duration elapsed")
			c.stopLocked()
		}
		active := c.active
		c.SetState(c.stateLocked())
		c.mu.Unlock()

		if !active {
			return
		}
	}
}

func (c *CaffeineTile) remainingLocked() time.Duration {
	if !c.active {
		return 0
	}
	if c.deadline.IsZero() {
		return Infinite
	}
	left := c.deadline.Sub(c.now())
	if left < 0 {
		return 0
	}
	return left
}

func (c *CaffeineTile) stateLocked() qs.State {
	state := qs.State{
		Value:              qs.StateInactive,
		Label:              "Caffeine",
		Icon:               "caffeine",
		ContentDescription: "Caffeine",
	}
	if c.active {
		state.Value = qs.StateActive
		state.SecondaryLabel = FormatRemaining(c.remainingLocked())
	}
	return state
}

// FormatRemaining renders a countdown as m:ss, or ∞ for Infinite.
func FormatRemaining(d time.Duration) string {
	if d == Infinite {
		return "∞"
	}
	// round up so the label never shows 0:00 while still active
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
