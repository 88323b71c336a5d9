package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// queueItem pairs a location with its hop count.
type queueItem struct {
	name string
	hops int
}

// walker encapsulates mutable traversal state.
type walker struct {
	n     *core.Network
	opts  Options
	queue []queueItem
	res   *Result
}

// Walk runs a breadth-first traversal of n from start.
// Returns ErrNilNetwork, ErrUnknownStart or ErrOptionViolation for invalid
// input, the context error on cancellation, or any OnVisit error.
func Walk(n *core.Network, start string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasLocation(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStart, start)
	}

	size := n.LocationCount()
	w := &walker{
		n:     n,
		opts:  o,
		queue: make([]queueItem, 0, size),
		res: &Result{
			Order:  make([]string, 0, size),
			Hops:   make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue records name as reached and adds it to the queue.
func (w *walker) enqueue(name string, hops int, parent string) {
	w.res.Hops[name] = hops
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, hops: hops})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}
		if w.opts.MaxHops > 0 && item.hops >= w.opts.MaxHops {
			continue
		}

		err := w.n.EachNeighbor(item.name, func(nbr string, _ int64) {
			if _, seen := w.res.Hops[nbr]; !seen {
				w.enqueue(nbr, item.hops+1, item.name)
			}
		})
		if err != nil {
			return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.name, err)
		}
	}

	return nil
}
