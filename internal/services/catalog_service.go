// internal/services/catalog_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/adapters"
	"github.com/javajoker/imi-catalog/internal/builder"
	"github.com/javajoker/imi-catalog/internal/decorators"
	"github.com/javajoker/imi-catalog/internal/facade"
	"github.com/javajoker/imi-catalog/internal/factory"
	"github.com/javajoker/imi-catalog/internal/models"
	"github.com/javajoker/imi-catalog/internal/store"
	"github.com/javajoker/imi-catalog/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	store  *store.Store
	facade *facade.StoreFacade
}

type QuickAddRequest struct {
	Kind  string `json:"kind" validate:"required,product_kind"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// BuildProductRequest carries every builder field. Fields left out keep the
// builder's zero value; CPU only applies to computers and Color to phones.
type BuildProductRequest struct {
	Kind    string `json:"kind" validate:"required,product_kind"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	CPU     string `json:"cpu,omitempty"`
	Color   string `json:"color,omitempty"`
	RAM     int    `json:"ram"`
	Storage int    `json:"storage"`
}

type InventoryUpdateRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ProductView struct {
	ID          uuid.UUID          `json:"id"`
	Kind        models.ProductKind `json:"kind"`
	Brand       string             `json:"brand"`
	Model       string             `json:"model"`
	CPU         string             `json:"cpu,omitempty"`
	Color       string             `json:"color,omitempty"`
	RAM         int                `json:"ram"`
	Storage     int                `json:"storage"`
	Discounts   []float64          `json:"discounts,omitempty"`
	Description string             `json:"description"`
}

func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{
		store:  s,
		facade: facade.NewStoreFacade(s),
	}
}

// QuickAdd creates a product with the default configuration of its kind and
// returns the inventory size afterwards.
func (s *CatalogService) QuickAdd(req *QuickAddRequest) (int, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	pf, err := factory.ForKind(models.ProductKind(req.Kind))
	if err != nil {
		return 0, err
	}

	s.facade.AddProduct(pf, req.Brand, req.Model)
	return s.store.Len(), nil
}

func (s *CatalogService) BuildProduct(req *BuildProductRequest) (*ProductView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	switch models.ProductKind(req.Kind) {
	case models.ProductKindComputer:
		product = builder.NewComputerBuilder().
			SetBrand(req.Brand).
			SetModel(req.Model).
			SetCPU(req.CPU).
			SetRAM(req.RAM).
			SetStorage(req.Storage).
			Build()
	case models.ProductKindSmartphone:
		product = builder.NewSmartphoneBuilder().
			SetBrand(req.Brand).
			SetModel(req.Model).
			SetColor(req.Color).
			SetRAM(req.RAM).
			SetStorage(req.Storage).
			Build()
	default:
		return nil, fmt.Errorf("%w: %q", factory.ErrUnknownKind, req.Kind)
	}

	id := s.store.AddProduct(product)
	logrus.WithFields(logrus.Fields{
		"entry_id": id,
		"product":  product.String(),
	}).Info("Custom product built")

	return newProductView(id, product, nil), nil
}

// ListProducts pages through the inventory in insertion order, optionally
// keeping only one kind.
func (s *CatalogService) ListProducts(params utils.PaginationParams) utils.PaginationResult {
	params = utils.NormalizePagination(params)

	var views []ProductView
	for _, e := range s.store.Entries() {
		if params.Kind != "" && string(e.Product.Kind()) != params.Kind {
			continue
		}
		views = append(views, *newProductView(e.ID, e.Product, nil))
	}

	start, end := utils.PageBounds(len(views), params)
	page := make([]ProductView, 0, end-start)
	page = append(page, views[start:end]...)

	return utils.CreatePaginationResult(page, int64(len(views)), params)
}

// GetProduct wraps the stored product in one discount decorator per entry of
// discounts, applied in order, without touching the stored product.
func (s *CatalogService) GetProduct(id uuid.UUID, discounts []float64) (*ProductView, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return nil, ErrProductNotFound
	}

	for _, pct := range discounts {
		product = decorators.NewDiscountDecorator(product, pct)
	}

	return newProductView(id, product, discounts), nil
}

func (s *CatalogService) GetDetailedInfo(id uuid.UUID) (string, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return "", ErrProductNotFound
	}

	var advanced adapters.AdvancedProduct = adapters.NewAdvancedProductAdapter(product)
	return advanced.ShowDetailedProductInfo(), nil
}

func (s *CatalogService) RenderInventory() string {
	var buf bytes.Buffer
	s.store.WriteInventory(&buf)
	return buf.String()
}

func (s *CatalogService) UpdateInventory(req *InventoryUpdateRequest) {
	s.store.UpdateInventory(req.Name, req.Quantity)
}

func newProductView(id uuid.UUID, product models.Product, discounts []float64) *ProductView {
	view := &ProductView{
		ID:          id,
		Kind:        product.Kind(),
		Brand:       product.Brand(),
		Model:       product.Model(),
		Discounts:   discounts,
		Description: product.Describe(),
	}

	base := product
	for {
		d, ok := base.(interface{ Unwrap() models.Product })
		if !ok {
			break
		}
		base = d.Unwrap()
	}

	switch p := base.(type) {
	case *models.Computer:
		view.CPU = p.CPU()
		view.RAM = p.RAM()
		view.Storage = p.Storage()
	case *models.Smartphone:
		view.Color = p.Color()
		view.RAM = p.RAM()
		view.Storage = p.Storage()
	}

	return view
}
