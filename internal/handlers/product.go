// internal/handlers/product.go
package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/imi-catalog/internal/factory"
	"github.com/javajoker/imi-catalog/internal/i18n"
	"github.com/javajoker/imi-catalog/internal/services"
	"github.com/javajoker/imi-catalog/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result := h.catalogService.ListProducts(params)
	utils.PaginatedResponse(c, result)
}

// POST /products/quick
func (h *ProductHandler) QuickAddProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	size, err := h.catalogService.QuickAdd(&req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyProductCreated),
		"inventory_size": size,
	})
}

// POST /products
func (h *ProductHandler) BuildProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.BuildProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.BuildProduct(&req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /products/:id?discount=10&discount=5
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalid), nil)
		return
	}

	var discounts []float64
	for _, raw := range c.QueryArray("discount") {
		pct, err := strconv.ParseFloat(raw, 64)
		// NaN and ±Inf parse fine but cannot be encoded in the JSON view.
		if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "discount"), raw)
			return
		}
		discounts = append(discounts, pct)
	}

	product, err := h.catalogService.GetProduct(id, discounts)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /products/:id/details
func (h *ProductHandler) GetProductDetails(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalid), nil)
		return
	}

	info, err := h.catalogService.GetDetailedInfo(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":      id,
		"details": info,
	})
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, factory.ErrUnknownKind):
		utils.BadRequestResponse(c, err.Error(), nil)
	case len(utils.GetValidationErrors(err)) > 0:
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}
