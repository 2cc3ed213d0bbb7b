package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputerDescribe(t *testing.T) {
	c := NewComputer("Lenovo", "Legion 5i pro", "Intel i5", 8, 2048)

	assert.Equal(t, "Computer [Brand=Lenovo, Model=Legion 5i pro, CPU=Intel i5, RAM=8GB, Storage=2048GB]", c.Describe())
	assert.Equal(t, c.Describe(), c.Describe())
	assert.Equal(t, "Lenovo Legion 5i pro", c.String())
	assert.Equal(t, ProductKindComputer, c.Kind())
}

func TestSmartphoneDescribe(t *testing.T) {
	s := NewSmartphone("Samsung", "Galaxy S23", "Titanium gray", 8, 128)

	assert.Equal(t, "Smartphone [Brand=Samsung, Model=Galaxy S23, Color=Titanium gray, RAM=8GB, Storage=128GB]", s.Describe())
	assert.Equal(t, "Samsung Galaxy S23", s.String())
	assert.Equal(t, ProductKindSmartphone, s.Kind())
}

func TestSmartphoneWithoutColor(t *testing.T) {
	s := NewSmartphone("Sony", "Xperia 9", "", 0, 0)

	assert.Equal(t, "Smartphone [Brand=Sony, Model=Xperia 9, Color=, RAM=0GB, Storage=0GB]", s.Describe())
}

func TestIdenticalFieldsAreDistinctProducts(t *testing.T) {
	a := NewComputer("Asus", "ROG", "AMD Ryzen 7", 16, 512)
	b := NewComputer("Asus", "ROG", "AMD Ryzen 7", 16, 512)

	assert.Equal(t, a.Describe(), b.Describe())
	assert.NotSame(t, a, b)
}

func TestProductKindValid(t *testing.T) {
	assert.True(t, ProductKindComputer.Valid())
	assert.True(t, ProductKindSmartphone.Valid())
	assert.False(t, ProductKind("tablet").Valid())
	assert.False(t, ProductKind("").Valid())
}
