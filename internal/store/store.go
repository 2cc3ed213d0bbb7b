// internal/store/store.go
package store

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/models"
)

// Entry is one inventory slot. Two entries holding products with identical
// fields are still distinct.
type Entry struct {
	ID      uuid.UUID
	Product models.Product
}

// Store is the shared inventory and the subject observers subscribe to.
// One mutex guards both the inventory and the observer list.
type Store struct {
	mu        sync.RWMutex
	inventory []Entry
	observers []Observer

	outMu sync.Mutex
	out   io.Writer
}

type Option func(*Store)

// WithOutput directs DisplayInventory and UpdateInventory output to w.
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

var instance *Store
var once sync.Once

// Default returns the process-wide store, creating it on first use.
func Default() *Store {
	once.Do(func() {
		instance = New()
	})
	return instance
}

func New(opts ...Option) *Store {
	s := &Store{out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProduct appends p to the inventory and returns the ID of the new entry.
// It does not notify observers.
func (s *Store) AddProduct(p models.Product) uuid.UUID {
	if p == nil {
		panic("store: nil product")
	}

	id := uuid.New()
	s.mu.Lock()
	s.inventory = append(s.inventory, Entry{ID: id, Product: p})
	size := len(s.inventory)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"entry_id":       id,
		"product":        p.String(),
		"kind":           p.Kind(),
		"inventory_size": size,
	}).Debug("Product added to inventory")

	return id
}

// DisplayInventory writes every product description, in insertion order,
// to the store output.
func (s *Store) DisplayInventory() {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	s.WriteInventory(s.out)
}

func (s *Store) WriteInventory(w io.Writer) {
	for _, p := range s.Products() {
		fmt.Fprintln(w, p.Describe())
	}
}

// UpdateInventory announces a named stock quantity and notifies every
// attached observer. The inventory sequence is left untouched.
func (s *Store) UpdateInventory(product string, quantity int) {
	s.outMu.Lock()
	fmt.Fprintf(s.out, "Inventory updated: %s - Quantity: %d\n", product, quantity)
	s.outMu.Unlock()

	logrus.WithFields(logrus.Fields{
		"product":  product,
		"quantity": quantity,
	}).Debug("Inventory updated")

	s.NotifyObservers(fmt.Sprintf("Product: %s has new inventory: %d", product, quantity))
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.inventory))
	for i, e := range s.inventory {
		products[i] = e.Product
	}
	return products
}

func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.inventory))
	copy(entries, s.inventory)
	return entries
}

func (s *Store) Get(id uuid.UUID) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.inventory {
		if e.ID == id {
			return e.Product, true
		}
	}
	return nil, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inventory)
}
