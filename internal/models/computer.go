// internal/models/computer.go
package models

import "fmt"

type Computer struct {
	BaseProduct
	cpu     string
	ram     int
	storage int
}

func NewComputer(brand, model, cpu string, ram, storage int) *Computer {
	return &Computer{
		BaseProduct: BaseProduct{brand: brand, model: model},
		cpu:         cpu,
		ram:         ram,
		storage:     storage,
	}
}

func (c *Computer) Kind() ProductKind { return ProductKindComputer }

func (c *Computer) CPU() string { return c.cpu }

// RAM is expressed in GB.
func (c *Computer) RAM() int { return c.ram }

// Storage is expressed in GB.
func (c *Computer) Storage() int { return c.storage }

func (c *Computer) Describe() string {
	return fmt.Sprintf("Computer [Brand=%s, Model=%s, CPU=%s, RAM=%dGB, Storage=%dGB]",
		c.brand, c.model, c.cpu, c.ram, c.storage)
}
