// internal/handlers/observer.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/imi-catalog/internal/i18n"
	"github.com/javajoker/imi-catalog/internal/services"
	"github.com/javajoker/imi-catalog/internal/utils"
)

type ObserverHandler struct {
	observerService *services.ObserverService
}

func NewObserverHandler(observerService *services.ObserverService) *ObserverHandler {
	return &ObserverHandler{
		observerService: observerService,
	}
}

// POST /observers
func (h *ObserverHandler) Subscribe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.observerService.Subscribe(&req); err != nil {
		if errors.Is(err, services.ErrObserverExists) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyObserverExists))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyObserverAttached),
		"name":    req.Name,
	})
}

// DELETE /observers/:name
func (h *ObserverHandler) Unsubscribe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	name := c.Param("name")

	if err := h.observerService.Unsubscribe(name); err != nil {
		utils.NotFoundResponse(c, i18n.KeyObserverNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyObserverDetached),
		"name":    name,
	})
}

// GET /observers/:name/messages
func (h *ObserverHandler) GetMessages(c *gin.Context) {
	name := c.Param("name")

	messages, err := h.observerService.Messages(name)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyObserverNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"name":     name,
		"messages": messages,
	})
}
