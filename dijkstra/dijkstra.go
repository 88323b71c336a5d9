// Package dijkstra implements single-source shortest paths with a lazy-deletion
// priority queue.
//
// Notes on implementation choices:
//
//   - Distances are not pre-initialized: absence from dist means "infinite".
//   - The heap has no decrease-key; stale entries are skipped on extraction.
//   - Relaxation uses strict "<", so an equal-cost alternative never replaces
//     the predecessor already recorded.
//   - Positive distances are a core.Network invariant, so no negative-weight scan is needed.
//   - Route totals stay below Unreachable; longer routes are not reported.
package dijkstra

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/pq"
)

// ShortestPath returns the minimum-distance route from start to end.
//
// Returns:
//
//   - path: the ordered stops start→end and their total distance.
//   - ok:   false when end cannot be reached from start, when either
//     endpoint is not a location of n, or when n is nil.
//
// Behavior highlights:
//
//   - start == end (and known) yields Path{Stops: [start], Distance: 0}.
//   - The search terminates as soon as end is extracted from the queue.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(n *core.Network, start, end string, opts ...Option) (Path, bool) {
	cfg := buildOptions(opts)
	if n == nil || !n.HasLocation(start) || !n.HasLocation(end) {
		cfg.Logger.WithFields(logrus.Fields{"start": start, "end": end}).
			Debug("dijkstra: unknown endpoint, route unreachable")
		return Path{}, false
	}
	if start == end {
		return Path{Stops: []string{start}, Distance: 0}, true
	}

	r := newRunner(n, cfg, start)
	r.target, r.hasTarget = end, true
	if err := r.process(); err != nil {
		// Only reachable if the network was mutated mid-search.
		cfg.Logger.WithError(err).Error("dijkstra: search aborted")
		return Path{}, false
	}

	return r.pathTo(end)
}

// Distances computes shortest distances from source to every location of n.
//
// Returns:
//
//   - Tree.Dist: every location name → distance (Unreachable if not reached).
//   - Tree.Prev: predecessor links for every reached location except source.
//
// Errors:
//
//   - ErrNilNetwork:    if n is nil.
//   - ErrUnknownSource: if source is not a location of n.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(n *core.Network, source string, opts ...Option) (Tree, error) {
	cfg := buildOptions(opts)
	if n == nil {
		return Tree{}, ErrNilNetwork
	}
	if !n.HasLocation(source) {
		return Tree{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	r := newRunner(n, cfg, source)
	if err := r.process(); err != nil {
		return Tree{}, err
	}

	// Report every location; absent ones were never reached.
	for _, name := range n.LocationNames() {
		if _, ok := r.dist[name]; !ok {
			r.dist[name] = Unreachable
		}
	}

	return Tree{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// PathTo rebuilds the route from t.Source to target.
// ok is false if target was not reached or is unknown.
func (t Tree) PathTo(target string) (Path, bool) {
	d, ok := t.Dist[target]
	if !ok || d == Unreachable {
		return Path{}, false
	}

	return reconstruct(t.Prev, t.Source, target, d)
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state for a single search.
type runner struct {
	n       *core.Network     // read-only within a search
	options Options           // logger and distance cap
	source  string            // start location
	dist    map[string]int64  // best known distance; absent means infinite
	prev    map[string]string // predecessor on the best known route
	pq      *pq.MinHeap[nodeItem, int64]

	target    string // location that ends the search early
	hasTarget bool
}

// nodeItem is one (location, distance) queue entry.
type nodeItem struct {
	id   string
	dist int64
}

func byDist(it nodeItem) int64 { return it.dist }

// newRunner records dist[source] = 0 and pushes the source onto the queue.
func newRunner(n *core.Network, cfg Options, source string) *runner {
	size := n.LocationCount()
	r := &runner{
		n:       n,
		options: cfg,
		source:  source,
		dist:    make(map[string]int64, size),
		prev:    make(map[string]string, size),
		pq:      pq.New(byDist, pq.WithCapacity(size)),
	}
	r.dist[source] = 0
	r.pq.Insert(nodeItem{id: source, dist: 0})

	return r
}

// process is the main loop. It repeatedly extracts the closest queued
// location, discards stale entries and relaxes the roads of the rest.
//
// Loop termination conditions:
//
//   - The queue becomes empty.
//   - The target (if any) is extracted.
//   - The smallest queued distance exceeds MaxDistance.
func (r *runner) process() error {
	log := r.options.Logger
	for !r.pq.IsEmpty() {
		item, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		log.WithFields(logrus.Fields{"location": item.id, "distance": item.dist}).
			Debug("dijkstra: looking at")

		if r.hasTarget && item.id == r.target {
			return nil
		}
		if item.dist > r.dist[item.id] {
			log.WithField("location", item.id).Trace("dijkstra: stale entry skipped")
			continue
		}
		if item.dist > r.options.MaxDistance {
			return nil
		}
		if err = r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
// A neighbor improves only when d(u)+w is strictly less than its recorded distance.
// Sums that would reach Unreachable are dropped before they are added.
func (r *runner) relax(u nodeItem) error {
	err := r.n.EachNeighbor(u.id, func(v string, w int64) {
		if w >= Unreachable-u.dist {
			return
		}
		candidate := u.dist + w
		if candidate > r.options.MaxDistance {
			return
		}
		if best, seen := r.dist[v]; seen && candidate >= best {
			return
		}
		r.dist[v] = candidate
		r.prev[v] = u.id
		r.pq.Insert(nodeItem{id: v, dist: candidate})
		r.options.Logger.WithFields(logrus.Fields{"location": v, "distance": candidate, "via": u.id}).
			Debug("dijkstra: found better path")
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u.id, err)
	}

	return nil
}

func (r *runner) pathTo(end string) (Path, bool) {
	d, ok := r.dist[end]
	if !ok {
		return Path{}, false
	}

	return reconstruct(r.prev, r.source, end, d)
}

// reconstruct walks prev from end back to start and reverses the result.
func reconstruct(prev map[string]string, start, end string, total int64) (Path, bool) {
	if start == end {
		return Path{Stops: []string{start}, Distance: 0}, true
	}
	if _, ok := prev[end]; !ok {
		return Path{}, false
	}

	stops := []string{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return Path{}, false
		}
		stops = append(stops, p)
		cur = p
	}
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	return Path{Stops: stops, Distance: total}, true
}
