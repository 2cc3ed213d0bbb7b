package store

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/imi-catalog/internal/models"
)

type StoreTestSuite struct {
	suite.Suite
	out   *bytes.Buffer
	store *Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.out = &bytes.Buffer{}
	suite.store = New(WithOutput(suite.out))
}

func (suite *StoreTestSuite) TestDisplayInventoryPreservesInsertionOrder() {
	first := models.NewComputer("Lenovo", "Legion 5i pro", "Intel i5", 8, 2048)
	second := models.NewSmartphone("Samsung", "Galaxy S23", "Titanium gray", 8, 128)
	third := models.NewComputer("Asus", "ROG", "AMD Ryzen 7", 16, 512)

	suite.store.AddProduct(first)
	suite.store.AddProduct(second)
	suite.store.AddProduct(third)
	suite.store.DisplayInventory()

	expected := first.Describe() + "\n" + second.Describe() + "\n" + third.Describe() + "\n"
	assert.Equal(suite.T(), expected, suite.out.String())
}

func (suite *StoreTestSuite) TestDisplayEmptyInventory() {
	suite.store.DisplayInventory()

	assert.Empty(suite.T(), suite.out.String())
}

func (suite *StoreTestSuite) TestIdenticalProductsAreSeparateEntries() {
	a := models.NewComputer("Asus", "ROG", "AMD Ryzen 7", 16, 512)
	b := models.NewComputer("Asus", "ROG", "AMD Ryzen 7", 16, 512)

	idA := suite.store.AddProduct(a)
	idB := suite.store.AddProduct(b)
	idAgain := suite.store.AddProduct(a)

	assert.Equal(suite.T(), 3, suite.store.Len())
	assert.NotEqual(suite.T(), idA, idB)
	assert.NotEqual(suite.T(), idA, idAgain)

	got, ok := suite.store.Get(idB)
	require.True(suite.T(), ok)
	assert.Same(suite.T(), b, got)

	_, ok = suite.store.Get(uuid.New())
	assert.False(suite.T(), ok)
}

func (suite *StoreTestSuite) TestEntriesSnapshotIsDetached() {
	suite.store.AddProduct(models.NewComputer("HP", "Omen", "Intel i7", 16, 1024))

	entries := suite.store.Entries()
	entries[0].Product = nil

	assert.NotNil(suite.T(), suite.store.Entries()[0].Product)
}

func (suite *StoreTestSuite) TestUpdateInventoryNotifiesInAttachmentOrder() {
	var received []string
	o1 := &funcObserver{fn: func(m string) { received = append(received, "O1:"+m) }}
	o2 := &funcObserver{fn: func(m string) { received = append(received, "O2:"+m) }}
	suite.store.AddProduct(models.NewComputer("Lenovo", "Legion 5i pro", "Intel i5", 8, 2048))

	suite.store.Attach(o1)
	suite.store.Attach(o2)
	suite.store.UpdateInventory("Laptop", 10)

	require.Len(suite.T(), received, 2)
	assert.True(suite.T(), strings.HasPrefix(received[0], "O1:"))
	assert.True(suite.T(), strings.HasPrefix(received[1], "O2:"))
	for _, m := range received {
		assert.Contains(suite.T(), m, "Laptop")
		assert.Contains(suite.T(), m, "10")
	}
	assert.Equal(suite.T(), 1, suite.store.Len())
	assert.Equal(suite.T(), "Inventory updated: Laptop - Quantity: 10\n", suite.out.String())
}

func (suite *StoreTestSuite) TestStoreObserverOutput() {
	var buf bytes.Buffer
	suite.store.Attach(NewStoreObserver("Observer1", &buf))
	suite.store.Attach(NewStoreObserver("Observer2", &buf))

	suite.store.UpdateInventory("Smartphone", 20)

	expected := "Observer Observer1 received update: Product: Smartphone has new inventory: 20\n" +
		"Observer Observer2 received update: Product: Smartphone has new inventory: 20\n"
	assert.Equal(suite.T(), expected, buf.String())
}

func (suite *StoreTestSuite) TestDoubleAttachDeliversTwice() {
	rec := NewRecordingObserver("dup")
	suite.store.Attach(rec)
	suite.store.Attach(rec)

	suite.store.UpdateInventory("Laptop", 1)

	assert.Len(suite.T(), rec.Messages(), 2)
	assert.Equal(suite.T(), 2, suite.store.Observers())
}

func (suite *StoreTestSuite) TestDetachRemovesEarliestRegistration() {
	rec := NewRecordingObserver("dup")
	other := NewRecordingObserver("other")
	suite.store.Attach(rec)
	suite.store.Attach(other)
	suite.store.Attach(rec)

	suite.store.Detach(rec)
	suite.store.UpdateInventory("Laptop", 3)

	assert.Len(suite.T(), rec.Messages(), 1)
	assert.Len(suite.T(), other.Messages(), 1)
	assert.Equal(suite.T(), 2, suite.store.Observers())

	suite.store.Detach(rec)
	suite.store.Detach(rec)
	suite.store.UpdateInventory("Laptop", 4)

	assert.Len(suite.T(), rec.Messages(), 1)
	assert.Len(suite.T(), other.Messages(), 2)
}

func (suite *StoreTestSuite) TestNoObserversIsFine() {
	suite.store.UpdateInventory("Tablet", 0)

	assert.Equal(suite.T(), "Inventory updated: Tablet - Quantity: 0\n", suite.out.String())
}

func (suite *StoreTestSuite) TestObserverMayDetachItselfDuringNotify() {
	rec := NewRecordingObserver("after")
	var self *funcObserver
	self = &funcObserver{fn: func(string) { suite.store.Detach(self) }}
	suite.store.Attach(self)
	suite.store.Attach(rec)

	suite.store.UpdateInventory("Laptop", 1)
	suite.store.UpdateInventory("Laptop", 2)

	assert.Len(suite.T(), rec.Messages(), 2)
	assert.Equal(suite.T(), 1, suite.store.Observers())
}

func (suite *StoreTestSuite) TestNilArgumentsPanic() {
	assert.Panics(suite.T(), func() { suite.store.AddProduct(nil) })
	assert.Panics(suite.T(), func() { suite.store.Attach(nil) })
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	first := Default()
	for i := 0; i < 10; i++ {
		assert.Same(t, first, Default())
	}
}

func TestDefaultConcurrentFirstAccess(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Store, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, Default(), s)
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := New(WithOutput(&bytes.Buffer{}))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddProduct(models.NewSmartphone("Google", "Pixel", "", 8, 128))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

type funcObserver struct {
	fn func(string)
}

func (o *funcObserver) Update(message string) { o.fn(message) }
