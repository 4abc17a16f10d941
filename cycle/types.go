// Package cycle provides tunable options, error definitions and the Cycle
// result type for branch-labelled cycle search.
package cycle

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors for cycle search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cycle: graph is nil")

	// ErrRootNotFound is returned when the root index is out of range.
	ErrRootNotFound = errors.New("cycle: root vertex not found")

	// ErrInvalidCycle is returned by Verify for a malformed cycle.
	ErrInvalidCycle = errors.New("cycle: invalid cycle")
)

// minCycleLen is the smallest simple cycle in a loop-free simple graph.
const minCycleLen = 3

// Cycle is an ordered sequence of distinct vertices in which consecutive
// vertices, and the last and first, are adjacent. A nil (or empty) Cycle
// means "no cycle".
type Cycle []int

// Found reports whether c holds a cycle.
func (c Cycle) Found() bool { return len(c) > 0 }

// Length returns the number of edges of c; ok is false for "no cycle".
func (c Cycle) Length() (n int, ok bool) {
	if len(c) == 0 {
		return 0, false
	}

	return len(c), true
}

// Closed returns a copy of c with the first vertex repeated at the end,
// handy for drawing a polyline. It returns nil for "no cycle".
func (c Cycle) Closed() []int {
	if len(c) == 0 {
		return nil
	}
	out := make([]int, len(c)+1)
	copy(out, c)
	out[len(c)] = c[0]

	return out
}

// Edges returns the edges of c as consecutive pairs, last→first included.
func (c Cycle) Edges() [][2]int {
	if len(c) == 0 {
		return nil
	}
	out := make([][2]int, len(c))
	for i, v := range c {
		out[i] = [2]int{v, c[(i+1)%len(c)]}
	}

	return out
}

// Shorter reports whether a is strictly shorter than b, where "no cycle"
// counts as infinitely long. Two absent cycles are equal, so neither is
// shorter.
func Shorter(a, b Cycle) bool {
	la, okA := a.Length()
	lb, okB := b.Length()
	switch {
	case !okA:
		return false
	case !okB:
		return true
	default:
		return la < lb
	}
}

// Option configures cycle search via functional arguments.
type Option func(*Options)

// Options holds callbacks and the logger used during a search.
type Options struct {
	// OnEnqueue is called when a vertex joins the queue with its branch label.
	OnEnqueue func(v, branch int)

	// OnDequeue is called immediately before a vertex is expanded.
	OnDequeue func(v, branch int)

	// OnCollision is called once per successful search with the waiting
	// vertex (partner1) and the vertex being expanded (partner2).
	OnCollision func(partner1, partner2 int)

	// Logger receives debug summaries of each search.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:   func(int, int) {},
		OnDequeue:   func(int, int) {},
		OnCollision: func(int, int) {},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, branch int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, branch int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnCollision registers a callback to run when two branches meet.
func WithOnCollision(fn func(partner1, partner2 int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCollision = fn
		}
	}
}

// WithLogger routes search summaries to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
