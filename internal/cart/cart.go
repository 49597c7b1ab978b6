// Package cart holds the client-resident cart: lines of (food, quantity)
// that survive restarts through local storage and turn into an order
// payload at checkout.
package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/localstore"
)

// storageKey is the fixed key the cart snapshot lives under.
const storageKey = "cart"

// Line is one cart entry: a food reference with denormalized display fields
// and a mutable quantity. At most one line exists per food id.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Storage is the slice of localstore the cart needs.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Store is owned by a single interactive session; mutations are not
// synchronized. The in-memory state is authoritative: persistence failures
// are logged and the session continues.
type Store struct {
	lines    []Line
	storage  Storage
	log      *slog.Logger
	onChange []func()
}

// NewStore loads a previously persisted cart. Absent or corrupt data falls
// back to an empty cart; the failure is logged, never returned.
func NewStore(storage Storage, log *slog.Logger) *Store {
	s := &Store{storage: storage, log: log}

	raw, err := storage.Load(storageKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Warn("cart load failed, starting empty", "error", err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		log.Warn("cart snapshot corrupt, starting empty", "error", err)
		s.lines = nil
	}
	return s
}

// OnChange registers a callback fired after every mutation; the client's
// display layer subscribes here for re-render triggers.
func (s *Store) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// Add merges by food id: an existing line's quantity goes up by one, a new
// food becomes a fresh line with quantity 1.
func (s *Store) Add(f domain.Food) {
	for i := range s.lines {
		if s.lines[i].ID == f.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, Line{ID: f.ID, Name: f.Name, Price: f.Price, Quantity: 1})
	s.persist()
}

// Remove drops the line for the given food id; no-op when absent.
func (s *Store) Remove(id string) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity updates a line's quantity. Non-positive quantities are
// rejected as a no-op; range clamping beyond that is the caller's job.
func (s *Store) SetQuantity(id string, q int) {
	if q < 1 {
		return
	}
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = q
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Total is the sum of price x quantity over all lines. Display and
// transmission round to two decimals via RoundedTotal.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// RoundedTotal is Total rounded to two decimal places.
func (s *Store) RoundedTotal() float64 {
	return math.Round(s.Total()*100) / 100
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the number of distinct lines.
func (s *Store) Count() int { return len(s.lines) }

// Items converts the cart into order item pairs for checkout.
func (s *Store) Items() []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, domain.OrderItem{FoodID: l.ID, Quantity: l.Quantity})
	}
	return out
}

func (s *Store) persist() {
	raw, err := json.Marshal(s.lines)
	if err == nil {
		err = s.storage.Save(storageKey, raw)
	}
	if err != nil {
		// in-memory cart stays authoritative for the session
		s.log.Warn("cart save failed", "error", err)
	}
	for _, fn := range s.onChange {
		fn()
	}
}
