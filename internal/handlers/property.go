// internal/handlers/property.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
	faqService      *services.FAQService
}

func NewPropertyHandler(propertyService *services.PropertyService, faqService *services.FAQService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		faqService:      faqService,
	}
}

// GET /properties
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	params := services.PropertySearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		City:             c.Query("city"),
		Type:             c.Query("type"),
		Status:           c.Query("status"),
	}

	properties, total, err := h.propertyService.ListProperties(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(properties, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	property, err := h.propertyService.GetProperty(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Per-area rate is derived server-side so clients render it as-is.
	pricePerArea := services.DerivePricePerArea(property.Price, property.CarpetArea)

	utils.SuccessResponse(c, gin.H{
		"property":       property,
		"price_per_sqft": pricePerArea,
	})
}

// GET /properties/:id/faqs
func (h *PropertyHandler) GetPropertyFAQs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	faqs, err := h.faqService.ListByProperty(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"faqs": faqs,
	})
}

// POST /admin/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	property, err := h.propertyService.CreateProperty(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Property created successfully",
		"property": property,
	})
}

// PUT /admin/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	var req services.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	property, err := h.propertyService.UpdateProperty(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Property updated successfully",
		"property": property,
	})
}

// DELETE /admin/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	if err := h.propertyService.DeleteProperty(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Property deleted successfully",
	})
}
