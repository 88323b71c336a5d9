// Package warehouse keeps the inventory that dispatches draw from.
//
// Items are identified by a zero-padded numeric ID ("001", "002", …) and
// matched by name case-insensitively. Adding an item whose name already
// exists tops up its quantity instead of creating a second entry.
//
// Errors:
//
//	ErrEmpty           – Select on a warehouse with no items.
//	ErrItemNotFound    – no item matches the requested name or ID.
//	ErrInvalidQuantity – non-positive quantity, or more than the stock on hand.
//	ErrDuplicateID     – Load with an ID that is already present.
//	ErrDuplicateName   – Load with a name already stocked (case-insensitive).
//	ErrInvalidItem     – field validation failed (name, priority 1..10, quantity ≥ 0).
package warehouse

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvroute/pq"
)

// Sentinel errors for inventory operations.
var (
	ErrEmpty           = errors.New("warehouse: warehouse is empty")
	ErrItemNotFound    = errors.New("warehouse: item not found")
	ErrInvalidQuantity = errors.New("warehouse: invalid quantity")
	ErrDuplicateID     = errors.New("warehouse: duplicate item ID")
	ErrDuplicateName   = errors.New("warehouse: duplicate item name")
	ErrInvalidItem     = errors.New("warehouse: invalid item")
)

// Priority bounds accepted for new items.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Item is one stock line.
type Item struct {
	ID       string `validate:"required,numeric"`
	Name     string `validate:"required"`
	Priority int    `validate:"min=1,max=10"`
	Quantity int    `validate:"gte=0"`
}

// String renders the item the way inventory listings print it.
func (it Item) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Priority: %d, Quantity: %d", it.ID, it.Name, it.Priority, it.Quantity)
}

// Warehouse is an in-memory inventory. It is not safe for concurrent use.
type Warehouse struct {
	items    map[string]*Item // ID → item
	validate *validator.Validate
}

// New returns an empty Warehouse.
func New() *Warehouse {
	return &Warehouse{
		items:    make(map[string]*Item),
		validate: validator.New(),
	}
}

// Load seeds the warehouse with items carrying explicit IDs.
// Names must be unique ignoring case, as AddItem would merge them.
// Items are checked one by one; those before the failing one stay loaded.
func (w *Warehouse) Load(items ...Item) error {
	for _, it := range items {
		if err := w.check(it); err != nil {
			return err
		}
		if _, exists := w.items[it.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		if other := w.byName(it.Name); other != nil {
			return fmt.Errorf("%w: %q (already stocked as %s)", ErrDuplicateName, it.Name, other.ID)
		}
		stored := it
		w.items[it.ID] = &stored
	}

	return nil
}

// AddItem stores quantity units of name.
//
// If an item with the same name exists (case-insensitive) its quantity grows
// and its priority is left unchanged; otherwise a new item is created with
// the next free ID and the given priority.
//
// Errors:
//   - ErrInvalidQuantity: quantity ≤ 0.
//   - ErrInvalidItem:     empty name or priority outside 1..10 for a new item.
func (w *Warehouse) AddItem(name string, priority, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if existing := w.byName(name); existing != nil {
		existing.Quantity += quantity
		return *existing, nil
	}

	it := Item{ID: w.nextID(), Name: name, Priority: priority, Quantity: quantity}
	if err := w.check(it); err != nil {
		return Item{}, err
	}
	w.items[it.ID] = &it

	return it, nil
}

// Exists reports whether an item named name is stocked (case-insensitive).
func (w *Warehouse) Exists(name string) bool {
	return w.byName(name) != nil
}

// Get returns the item with the given ID.
func (w *Warehouse) Get(id string) (Item, error) {
	it, ok := w.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %s", ErrItemNotFound, id)
	}

	return *it, nil
}

// Items returns a snapshot of the inventory sorted by ID.
func (w *Warehouse) Items() []Item {
	out := make([]Item, 0, len(w.items))
	for _, it := range w.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })

	return out
}

// Len returns the number of stock lines.
func (w *Warehouse) Len() int { return len(w.items) }

// Select picks the item to dispatch.
//
// An empty name selects the highest-priority item (lowest ID among equal
// priorities); otherwise the item is looked up by name, case-insensitively.
//
// Errors:
//   - ErrEmpty:        the warehouse holds no items.
//   - ErrItemNotFound: no item has the requested name.
func (w *Warehouse) Select(name string) (Item, error) {
	if len(w.items) == 0 {
		return Item{}, ErrEmpty
	}
	if name != "" {
		it := w.byName(name)
		if it == nil {
			return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
		}
		return *it, nil
	}

	// Max-priority selection through the min-heap: negate the priority and
	// fold the ID rank in as the tie-breaker.
	ranked := w.Items()
	h := pq.New(func(r rankedItem) int {
		return -r.item.Priority*len(ranked) + r.rank
	}, pq.WithCapacity(len(ranked)))
	for i, it := range ranked {
		h.Insert(rankedItem{item: it, rank: i})
	}
	top, err := h.ExtractMin()
	if err != nil {
		return Item{}, fmt.Errorf("warehouse: %w", err)
	}

	return top.item, nil
}

// Withdraw removes quantity units from the item with the given ID and
// returns the updated item. An item reaching zero stays listed.
//
// Errors:
//   - ErrItemNotFound:    no item has that ID.
//   - ErrInvalidQuantity: quantity ≤ 0 or above the stock on hand.
func (w *Warehouse) Withdraw(id string, quantity int) (Item, error) {
	it, ok := w.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %s", ErrItemNotFound, id)
	}
	if quantity <= 0 || quantity > it.Quantity {
		return Item{}, fmt.Errorf("%w: %d (in stock: %d)", ErrInvalidQuantity, quantity, it.Quantity)
	}
	it.Quantity -= quantity

	return *it, nil
}

type rankedItem struct {
	item Item
	rank int
}

// byName finds the item named name ignoring case. Load and AddItem keep
// names unique under that comparison, so at most one item matches.
func (w *Warehouse) byName(name string) *Item {
	for _, it := range w.items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}

	return nil
}

// nextID returns max numeric ID + 1, zero-padded to three digits.
func (w *Warehouse) nextID() string {
	highest := 0
	for id := range w.items {
		if v, err := strconv.Atoi(id); err == nil && v > highest {
			highest = v
		}
	}

	return fmt.Sprintf("%03d", highest+1)
}

func (w *Warehouse) check(it Item) error {
	if err := w.validate.Struct(it); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidItem, f.Field(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	return nil
}

// idLess orders numeric IDs numerically and falls back to string order.
func idLess(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil && x != y {
		return x < y
	}

	return a < b
}
