// internal/services/seed.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/builder"
	"github.com/javajoker/imi-catalog/internal/facade"
	"github.com/javajoker/imi-catalog/internal/factory"
	"github.com/javajoker/imi-catalog/internal/store"
)

// SeedDemoCatalog fills s with a small sample catalog through every creation
// path: factories, builders and the facade.
func SeedDemoCatalog(s *store.Store) {
	s.AddProduct(factory.ComputerFactory{}.CreateProduct("Lenovo", "Legion 5i pro"))
	s.AddProduct(factory.SmartphoneFactory{}.CreateProduct("Samsung", "Galaxy S23"))

	s.AddProduct(builder.NewComputerBuilder().
		SetBrand("Asus").
		SetModel("ROG").
		SetCPU("AMD Ryzen 7").
		SetRAM(16).
		SetStorage(512).
		Build())

	s.AddProduct(builder.NewSmartphoneBuilder().
		SetBrand("Apple").
		SetModel("16 pro Max").
		SetColor("Space gray").
		SetRAM(8).
		SetStorage(512).
		Build())

	f := facade.NewStoreFacade(s)
	f.AddProduct(factory.ComputerFactory{}, "Apple", "MacBook Air")
	f.AddProduct(factory.SmartphoneFactory{}, "Sonny", "Xperia 9")

	logrus.WithField("inventory_size", s.Len()).Info("Demo catalog seeded")
}
