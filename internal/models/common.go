// internal/models/common.go
package models

// Enums
type ProductKind string

const (
	ProductKindComputer   ProductKind = "computer"
	ProductKindSmartphone ProductKind = "smartphone"
)

// Valid reports whether k names one of the known variants.
func (k ProductKind) Valid() bool {
	switch k {
	case ProductKindComputer, ProductKindSmartphone:
		return true
	}
	return false
}
