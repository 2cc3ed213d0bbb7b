// internal/builder/computer_builder.go
package builder

import "github.com/javajoker/imi-catalog/internal/models"

// ComputerBuilder accumulates computer fields across chained setters.
// Fields never set keep their zero value.
type ComputerBuilder struct {
	brand   string
	model   string
	cpu     string
	ram     int
	storage int
}

func NewComputerBuilder() *ComputerBuilder {
	return &ComputerBuilder{}
}

func (b *ComputerBuilder) SetBrand(brand string) *ComputerBuilder {
	b.brand = brand
	return b
}

func (b *ComputerBuilder) SetModel(model string) *ComputerBuilder {
	b.model = model
	return b
}

func (b *ComputerBuilder) SetCPU(cpu string) *ComputerBuilder {
	b.cpu = cpu
	return b
}

func (b *ComputerBuilder) SetRAM(ram int) *ComputerBuilder {
	b.ram = ram
	return b
}

func (b *ComputerBuilder) SetStorage(storage int) *ComputerBuilder {
	b.storage = storage
	return b
}

// Build returns a new computer on every call.
func (b *ComputerBuilder) Build() *models.Computer {
	return models.NewComputer(b.brand, b.model, b.cpu, b.ram, b.storage)
}
