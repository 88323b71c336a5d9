// Package dijkstra defines the result types and configuration options for
// shortest-path queries over a core.Network.
//
// Options:
//
//	– WithLogger:      trace settled locations and distance improvements at Debug level.
//	– WithMaxDistance: stop exploring once the smallest queued distance exceeds a cap.
//
// Errors (sentinel):
//
//	– ErrNilNetwork     if the provided network pointer is nil.
//	– ErrUnknownSource  if the source location does not exist.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised via panic from the option).
package dijkstra

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/logger"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilNetwork indicates that a nil *core.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrUnknownSource indicates that the source location is not in the network.
	ErrUnknownSource = errors.New("dijkstra: source location not found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance recorded in Tree.Dist for locations the search never reached.
// It is reserved: a route whose total would reach or exceed it is treated as
// unreachable, so road sums never overflow int64.
const Unreachable int64 = math.MaxInt64

// Path is an ordered route from its first stop to its last.
//
// Stops[0] is the start, Stops[len-1] the end. Distance is the sum of the
// road distances along consecutive stops (0 for a single-stop path).
type Path struct {
	Stops    []string
	Distance int64
}

// Len returns the number of stops.
func (p Path) Len() int { return len(p.Stops) }

// Tree is the outcome of a full single-source run.
//
// Dist[v] is the shortest distance from Source to v, or Unreachable.
// Prev[v] is the predecessor of v on one shortest path; absent for Source
// and for unreachable locations.
type Tree struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// Options configures a search.
//
// Logger      – receives Debug traces; defaults to a discarding logger.
// MaxDistance – distances above this value are never settled. Default math.MaxInt64.
type Options struct {
	Logger      logrus.FieldLogger
	MaxDistance int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithLogger routes search traces to l at Debug level.
// A nil logger, typed or untyped, means the discarding default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger.OrDiscard(l)
	}
}

// WithMaxDistance caps the explored radius.
// Locations farther than max from the source are reported unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no option is passed.
//
// Defaults:
//   - Logger:      logrus logger writing to io.Discard.
//   - MaxDistance: math.MaxInt64 (no cap).
func DefaultOptions() Options {
	return Options{
		Logger:      logger.Discard(),
		MaxDistance: math.MaxInt64,
	}
}
