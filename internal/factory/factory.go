// internal/factory/factory.go
package factory

import (
	"errors"
	"fmt"

	"github.com/javajoker/imi-catalog/internal/models"
)

var ErrUnknownKind = errors.New("unknown product kind")

// ProductFactory creates a product of one fixed variant and default
// configuration from a brand and a model.
type ProductFactory interface {
	CreateProduct(brand, model string) models.Product
}

// ComputerFactory produces Intel i5 machines with 8GB RAM and 2048GB storage.
type ComputerFactory struct{}

func (ComputerFactory) CreateProduct(brand, model string) models.Product {
	return models.NewComputer(brand, model, "Intel i5", 8, 2048)
}

// SmartphoneFactory produces Titanium gray phones with 8GB RAM and 128GB storage.
type SmartphoneFactory struct{}

func (SmartphoneFactory) CreateProduct(brand, model string) models.Product {
	return models.NewSmartphone(brand, model, "Titanium gray", 8, 128)
}

func ForKind(kind models.ProductKind) (ProductFactory, error) {
	switch kind {
	case models.ProductKindComputer:
		return ComputerFactory{}, nil
	case models.ProductKindSmartphone:
		return SmartphoneFactory{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
