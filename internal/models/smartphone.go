// internal/models/smartphone.go
package models

import "fmt"

type Smartphone struct {
	BaseProduct
	color   string
	ram     int
	storage int
}

func NewSmartphone(brand, model, color string, ram, storage int) *Smartphone {
	return &Smartphone{
		BaseProduct: BaseProduct{brand: brand, model: model},
		color:       color,
		ram:         ram,
		storage:     storage,
	}
}

func (s *Smartphone) Kind() ProductKind { return ProductKindSmartphone }

// Color is empty when the construction path never set one.
func (s *Smartphone) Color() string { return s.color }

func (s *Smartphone) RAM() int { return s.ram }

func (s *Smartphone) Storage() int { return s.storage }

func (s *Smartphone) Describe() string {
	return fmt.Sprintf("Smartphone [Brand=%s, Model=%s, Color=%s, RAM=%dGB, Storage=%dGB]",
		s.brand, s.model, s.color, s.ram, s.storage)
}
