// internal/adapters/advanced_product.go
package adapters

import (
	"fmt"

	"github.com/javajoker/imi-catalog/internal/models"
)

// AdvancedProduct is the contract of clients that want a detailed view and
// know nothing about models.Product.
type AdvancedProduct interface {
	ShowDetailedProductInfo() string
}

type AdvancedProductAdapter struct {
	product models.Product
}

func NewAdvancedProductAdapter(product models.Product) *AdvancedProductAdapter {
	if product == nil {
		panic("adapters: nil product")
	}
	return &AdvancedProductAdapter{product: product}
}

func (a *AdvancedProductAdapter) ShowDetailedProductInfo() string {
	return a.product.Describe() + "\n" +
		fmt.Sprintf("The product: %s is available in VERY LIMITED stock.", a.product)
}
