package stats

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
)

// DefaultMaxSamples is how many response times are kept per command
const DefaultMaxSamples = 1000

// Config holds configuration for the tracker
type Config struct {
	// MaxSamples bounds the response time history per command
	MaxSamples int

	// Service dependencies
	Clock clock.Clock
}

// Tracker counts requests per command and keeps recent response times
type Tracker struct {
	clock      clock.Clock
	maxSamples int
	startedAt  time.Time

	mu       sync.Mutex
	requests int64
	users    map[string]struct{}
	commands map[string]*commandStats
}

// commandStats keeps a ring buffer of the most recent response times
type commandStats struct {
	requests int64
	samples  []time.Duration
	next     int
}

func (c *commandStats) add(elapsed time.Duration, limit int) {
	c.requests++
	if len(c.samples) < limit {
		c.samples = append(c.samples, elapsed)
		return
	}
	c.samples[c.next] = elapsed
	c.next = (c.next + 1) % limit
}

// New creates a tracker whose uptime starts now
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	maxSamples := cfg.MaxSamples
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	return &Tracker{
		clock:      cfg.Clock,
		maxSamples: maxSamples,
		startedAt:  cfg.Clock.Now(),
		users:      make(map[string]struct{}),
		commands:   make(map[string]*commandStats),
	}, nil
}

// Track starts timing a command. Call the returned func when the response is sent.
func (t *Tracker) Track(command, userID string) func() {
	start := t.clock.Now()
	return func() {
		t.Record(command, userID, t.clock.Now().Sub(start))
	}
}

// Record adds one handled request
func (t *Tracker) Record(command, userID string, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if userID != "" {
		t.users[userID] = struct{}{}
	}

	stats, ok := t.commands[command]
	if !ok {
		stats = &commandStats{}
		t.commands[command] = stats
	}
	stats.add(elapsed, t.maxSamples)
}

// Summary returns the current counters. Commands are ordered by request
// count, then by name, both descending.
func (t *Tracker) Summary() *Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	summary := &Summary{
		Requests:    t.requests,
		UniqueUsers: len(t.users),
		Uptime:      t.clock.Now().Sub(t.startedAt),
		Commands:    make([]*CommandSummary, 0, len(t.commands)),
	}

	var total time.Duration
	var samples int
	for name, stats := range t.commands {
		var sum time.Duration
		for _, elapsed := range stats.samples {
			sum += elapsed
		}
		total += sum
		samples += len(stats.samples)

		command := &CommandSummary{
			Name:     name,
			Requests: stats.requests,
		}
		if len(stats.samples) > 0 {
			command.AverageResponse = sum / time.Duration(len(stats.samples))
		}
		summary.Commands = append(summary.Commands, command)
	}

	if samples > 0 {
		summary.AverageResponse = total / time.Duration(samples)
	}

	sort.Slice(summary.Commands, func(i, j int) bool {
		if summary.Commands[i].Requests != summary.Commands[j].Requests {
			return summary.Commands[i].Requests > summary.Commands[j].Requests
		}
		return summary.Commands[i].Name > summary.Commands[j].Name
	})

	return summary
}

// Summary is a point-in-time view of the tracker
type Summary struct {
	Requests        int64
	UniqueUsers     int
	Uptime          time.Duration
	AverageResponse time.Duration
	Commands        []*CommandSummary
}

// CommandSummary holds the counters of one command
type CommandSummary struct {
	Name            string
	Requests        int64
	AverageResponse time.Duration
}
