// internal/decorators/decorator.go
package decorators

import "github.com/javajoker/imi-catalog/internal/models"

// ProductDecorator wraps exactly one product and forwards to it. Concrete
// decorators embed it and override Describe.
type ProductDecorator struct {
	decorated models.Product
}

// NewProductDecorator panics on a nil product.
func NewProductDecorator(p models.Product) ProductDecorator {
	if p == nil {
		panic("decorators: nil product")
	}
	return ProductDecorator{decorated: p}
}

func (d ProductDecorator) Brand() string { return d.decorated.Brand() }

func (d ProductDecorator) Model() string { return d.decorated.Model() }

func (d ProductDecorator) Kind() models.ProductKind { return d.decorated.Kind() }

func (d ProductDecorator) String() string { return d.decorated.String() }

func (d ProductDecorator) Describe() string { return d.decorated.Describe() }

func (d ProductDecorator) Unwrap() models.Product { return d.decorated }
