// internal/handlers/inventory.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/imi-catalog/internal/i18n"
	"github.com/javajoker/imi-catalog/internal/services"
	"github.com/javajoker/imi-catalog/internal/utils"
)

type InventoryHandler struct {
	catalogService *services.CatalogService
}

func NewInventoryHandler(catalogService *services.CatalogService) *InventoryHandler {
	return &InventoryHandler{
		catalogService: catalogService,
	}
}

// GET /inventory renders the store display as plain text.
func (h *InventoryHandler) ShowInventory(c *gin.Context) {
	c.String(http.StatusOK, h.catalogService.RenderInventory())
}

// POST /inventory/updates
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.InventoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	h.catalogService.UpdateInventory(&req)

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyInventoryUpdated),
		"name":     req.Name,
		"quantity": req.Quantity,
	})
}
