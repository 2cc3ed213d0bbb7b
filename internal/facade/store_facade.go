// internal/facade/store_facade.go
package facade

import (
	"github.com/javajoker/imi-catalog/internal/factory"
	"github.com/javajoker/imi-catalog/internal/store"
)

// StoreFacade turns "create with a factory, then add to the store" into a
// single call.
type StoreFacade struct {
	store *store.Store
}

func NewStoreFacade(s *store.Store) *StoreFacade {
	if s == nil {
		panic("facade: nil store")
	}
	return &StoreFacade{store: s}
}

// NewDefaultStoreFacade binds the facade to the process-wide store.
func NewDefaultStoreFacade() *StoreFacade {
	return NewStoreFacade(store.Default())
}

func (f *StoreFacade) AddProduct(pf factory.ProductFactory, brand, model string) {
	f.store.AddProduct(pf.CreateProduct(brand, model))
}

func (f *StoreFacade) ShowInventory() {
	f.store.DisplayInventory()
}
