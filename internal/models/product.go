// internal/models/product.go
package models

// Product is anything the store can carry: it knows its brand and model,
// which variant it is, and how to describe itself.
type Product interface {
	Brand() string
	Model() string
	Kind() ProductKind
	// Describe renders every attribute of the product, labelled by name.
	Describe() string
	// String renders the short "<brand> <model>" identity.
	String() string
}

// BaseProduct holds the attributes shared by every variant.
type BaseProduct struct {
	brand string
	model string
}

func (b BaseProduct) Brand() string { return b.brand }

func (b BaseProduct) Model() string { return b.model }

func (b BaseProduct) String() string {
	return b.brand + " " + b.model
}
