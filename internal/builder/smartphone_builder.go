// internal/builder/smartphone_builder.go
package builder

import "github.com/javajoker/imi-catalog/internal/models"

type SmartphoneBuilder struct {
	brand   string
	model   string
	color   string
	ram     int
	storage int
}

func NewSmartphoneBuilder() *SmartphoneBuilder {
	return &SmartphoneBuilder{}
}

func (b *SmartphoneBuilder) SetBrand(brand string) *SmartphoneBuilder {
	b.brand = brand
	return b
}

func (b *SmartphoneBuilder) SetModel(model string) *SmartphoneBuilder {
	b.model = model
	return b
}

func (b *SmartphoneBuilder) SetColor(color string) *SmartphoneBuilder {
	b.color = color
	return b
}

func (b *SmartphoneBuilder) SetRAM(ram int) *SmartphoneBuilder {
	b.ram = ram
	return b
}

func (b *SmartphoneBuilder) SetStorage(storage int) *SmartphoneBuilder {
	b.storage = storage
	return b
}

func (b *SmartphoneBuilder) Build() *models.Smartphone {
	return models.NewSmartphone(b.brand, b.model, b.color, b.ram, b.storage)
}
