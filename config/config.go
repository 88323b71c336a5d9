// Package config loads an lvroute scenario: the log level, the road network,
// the origin depot and the starting inventory.
//
// A scenario is a YAML document:
//
//	log:
//	  level: info
//	origin: Depot
//	locations: [Depot, Market, Harbor]
//	roads:
//	  - {from: Depot, to: Market, distance: 4}
//	inventory:
//	  - {id: "001", name: Bolts, priority: 7, quantity: 120}
//
// Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/logistics"
	"github.com/katalvlaran/lvroute/warehouse"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is a parsed scenario.
type Config struct {
	Log       Log      `yaml:"log"`
	Origin    string   `yaml:"origin"`
	Locations []string `yaml:"locations" validate:"dive,required"`
	Roads     []Road   `yaml:"roads" validate:"dive"`
	Inventory []Item   `yaml:"inventory" validate:"dive"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

// Road is one undirected road.
type Road struct {
	From     string `yaml:"from" validate:"required"`
	To       string `yaml:"to" validate:"required"`
	Distance int64  `yaml:"distance" validate:"gt=0"`
}

// Item is one inventory line.
type Item struct {
	ID       string `yaml:"id" validate:"required,numeric"`
	Name     string `yaml:"name" validate:"required"`
	Priority int    `yaml:"priority" validate:"min=1,max=10"`
	Quantity int    `yaml:"quantity" validate:"gte=0"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a scenario from r. An empty document yields
// an empty scenario.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and that the origin is declared.
// All field errors are reported together.
func (c *Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, f := range fields {
			problems = append(problems, fmt.Sprintf("%s fails %q", f.Namespace(), f.Tag()))
		}
	}
	if c.Origin != "" && !c.declares(c.Origin) {
		problems = append(problems, fmt.Sprintf("origin %q is not a declared location", c.Origin))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

func (c *Config) declares(name string) bool {
	for _, l := range c.Locations {
		if l == name {
			return true
		}
	}

	return false
}

// Network builds the road network described by c.
// Roads between undeclared locations fail with core.ErrUnknownLocation.
func (c *Config) Network() (*core.Network, error) {
	n := core.NewNetwork()
	for _, name := range c.Locations {
		if err := n.AddLocation(name); err != nil {
			return nil, fmt.Errorf("config: location: %w", err)
		}
	}
	for i, r := range c.Roads {
		if err := n.AddRoad(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("config: roads[%d]: %w", i, err)
		}
	}

	return n, nil
}

// Warehouse builds the starting inventory described by c.
func (c *Config) Warehouse() (*warehouse.Warehouse, error) {
	w := warehouse.New()
	for _, it := range c.Inventory {
		err := w.Load(warehouse.Item{ID: it.ID, Name: it.Name, Priority: it.Priority, Quantity: it.Quantity})
		if err != nil {
			return nil, fmt.Errorf("config: inventory: %w", err)
		}
	}

	return w, nil
}

// Build wires the scenario into a logistics.Service.
// A nil log discards output.
func (c *Config) Build(log logrus.FieldLogger) (*logistics.Service, error) {
	n, err := c.Network()
	if err != nil {
		return nil, err
	}
	w, err := c.Warehouse()
	if err != nil {
		return nil, err
	}

	opts := []logistics.Option{logistics.WithLogger(log)}
	if c.Origin != "" {
		opts = append(opts, logistics.WithOrigin(c.Origin))
	}
	svc, err := logistics.NewService(n, w, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	svc.Logger().WithFields(logrus.Fields{
		"locations": n.LocationCount(),
		"roads":     n.RoadCount(),
		"items":     w.Len(),
		"origin":    svc.Origin(),
	}).Debug("config: scenario loaded")

	return svc, nil
}
