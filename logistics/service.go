// Package logistics ties the road network and the warehouse together:
// it plans the route for an item from the origin depot to a destination
// and records dispatches against stock.
package logistics

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/logger"
	"github.com/katalvlaran/lvroute/warehouse"
)

var (
	// ErrUnknownDestination is returned when a plan targets a location that is not in the network.
	ErrUnknownDestination = errors.New("logistics: destination not found")
	// ErrNoRoute is returned when the destination cannot be reached from the origin.
	ErrNoRoute = errors.New("logistics: no route to destination")
	// ErrNoOrigin is returned when the network holds no locations to depart from.
	ErrNoOrigin = errors.New("logistics: no origin location")
)

// Plan is a priced route for one item, awaiting confirmation.
type Plan struct {
	Ticket uuid.UUID
	Item   warehouse.Item
	Route  dijkstra.Path
}

// Destination is the last stop of the route.
func (p Plan) Destination() string {
	if len(p.Route.Stops) == 0 {
		return ""
	}

	return p.Route.Stops[len(p.Route.Stops)-1]
}

// Dispatch is a confirmed plan together with the quantity shipped.
type Dispatch struct {
	Plan
	Quantity  int
	Remaining int
	At        time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; a nil logger, typed or untyped, discards.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		s.log = logger.OrDiscard(log)
	}
}

// WithOrigin sets the starting location. It is checked by NewService.
func WithOrigin(name string) Option {
	return func(s *Service) { s.origin = name }
}

// Service owns the network and warehouse for a session.
// It is not safe for concurrent use.
type Service struct {
	network    *core.Network
	warehouse  *warehouse.Warehouse
	log        logrus.FieldLogger
	origin     string
	dispatches []Dispatch
	now        func() time.Time
}

// NewService wires a network and a warehouse together.
// Without WithOrigin the origin is the first location in name order,
// or empty while the network has no locations.
func NewService(n *core.Network, w *warehouse.Warehouse, opts ...Option) (*Service, error) {
	if n == nil {
		n = core.NewNetwork()
	}
	if w == nil {
		w = warehouse.New()
	}
	s := &Service{network: n, warehouse: w, log: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if s.origin != "" {
		if !n.HasLocation(s.origin) {
			return nil, fmt.Errorf("logistics: origin: %w: %q", core.ErrUnknownLocation, s.origin)
		}
	} else if names := n.LocationNames(); len(names) > 0 {
		s.origin = names[0]
	}

	return s, nil
}

// Network returns the live network.
func (s *Service) Network() *core.Network { return s.network }

// Logger returns the logger the service writes to; never nil.
func (s *Service) Logger() logrus.FieldLogger { return s.log }

// Warehouse returns the live warehouse.
func (s *Service) Warehouse() *warehouse.Warehouse { return s.warehouse }

// Origin returns the current starting location. If the configured origin
// was removed from the network the first remaining location takes its place.
func (s *Service) Origin() string {
	if s.origin == "" || !s.network.HasLocation(s.origin) {
		s.origin = ""
		if names := s.network.LocationNames(); len(names) > 0 {
			s.origin = names[0]
		}
	}

	return s.origin
}

// SetOrigin changes the starting location.
func (s *Service) SetOrigin(name string) error {
	if !s.network.HasLocation(name) {
		return fmt.Errorf("logistics: origin: %w: %q", core.ErrUnknownLocation, name)
	}
	s.origin = name
	s.log.WithField("origin", name).Info("logistics: origin changed")

	return nil
}

// Route finds the shortest route between two locations.
func (s *Service) Route(from, to string) (dijkstra.Path, bool) {
	return dijkstra.ShortestPath(s.network, from, to, dijkstra.WithLogger(s.log))
}

// Plan selects an item (highest priority when itemName is empty) and
// computes its route from the origin to destination.
//
// Errors:
//   - warehouse.ErrEmpty / warehouse.ErrItemNotFound from item selection.
//   - ErrUnknownDestination: destination is not a location.
//   - ErrNoOrigin:           the network has no locations.
//   - ErrNoRoute:            destination is unreachable from the origin.
func (s *Service) Plan(itemName, destination string) (Plan, error) {
	item, err := s.warehouse.Select(itemName)
	if err != nil {
		return Plan{}, err
	}
	if !s.network.HasLocation(destination) {
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownDestination, destination)
	}
	origin := s.Origin()
	if origin == "" {
		return Plan{}, ErrNoOrigin
	}

	path, ok := s.Route(origin, destination)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, origin, destination)
	}

	p := Plan{Ticket: uuid.New(), Item: item, Route: path}
	s.log.WithFields(logrus.Fields{
		"ticket":   p.Ticket,
		"item":     item.Name,
		"from":     origin,
		"to":       destination,
		"distance": path.Distance,
	}).Debug("logistics: route planned")

	return p, nil
}

// Dispatch confirms p, withdrawing quantity units of its item.
// warehouse.ErrInvalidQuantity is returned for a non-positive quantity or
// one above the current stock.
func (s *Service) Dispatch(p Plan, quantity int) (Dispatch, error) {
	left, err := s.warehouse.Withdraw(p.Item.ID, quantity)
	if err != nil {
		return Dispatch{}, err
	}

	d := Dispatch{Plan: p, Quantity: quantity, Remaining: left.Quantity, At: s.now()}
	d.Item = left
	s.dispatches = append(s.dispatches, d)
	s.log.WithFields(logrus.Fields{
		"ticket":    p.Ticket,
		"item":      left.Name,
		"quantity":  quantity,
		"remaining": left.Quantity,
		"to":        p.Destination(),
	}).Info("logistics: dispatched")

	return d, nil
}

// Dispatches returns the recorded dispatches, oldest first.
func (s *Service) Dispatches() []Dispatch {
	out := make([]Dispatch, len(s.dispatches))
	copy(out, s.dispatches)

	return out
}
