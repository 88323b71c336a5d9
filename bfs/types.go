// Package bfs provides options and error definitions for hop-count
// traversal over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("bfs: network is nil")

	// ErrUnknownStart is returned when the start location is absent.
	ErrUnknownStart = errors.New("bfs: start location not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for each location in visit order. Returning an
	// error stops the walk and propagates that error.
	OnVisit func(name string, hops int) error

	// MaxHops, if > 0, stops expanding beyond this many roads from start.
	MaxHops int

	err error
}

// DefaultOptions returns Options with no hop limit, a background context
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; nil is ignored.
func WithOnVisit(fn func(name string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the walk to h roads from start.
//
//	h > 0:  limit to h hops
//	h == 0: no limit
//	h < 0:  ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// Result holds the outcome of a walk.
type Result struct {
	// Order lists reached locations in visit order, start first.
	Order []string
	// Hops maps each reached location to its road count from start.
	Hops map[string]int
	// Parent maps each reached location except start to its predecessor.
	Parent map[string]string
}

// PathTo returns the fewest-roads route from start to name, or nil if name
// was not reached.
func (r *Result) PathTo(name string) []string {
	if _, ok := r.Hops[name]; !ok {
		return nil
	}
	path := []string{name}
	for cur := name; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
