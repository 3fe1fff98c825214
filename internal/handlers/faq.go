// internal/handlers/faq.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type FAQHandler struct {
	faqService *services.FAQService
}

func NewFAQHandler(faqService *services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// POST /admin/faqs
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req services.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	faq, err := h.faqService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "FAQ created successfully",
		"faq":     faq,
	})
}

// PUT /admin/faqs/:id
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid FAQ ID", nil)
		return
	}

	var req services.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	faq, err := h.faqService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "FAQ updated successfully",
		"faq":     faq,
	})
}

// DELETE /admin/faqs/:id
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid FAQ ID", nil)
		return
	}

	if err := h.faqService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "FAQ deleted successfully",
	})
}

// POST /admin/properties/:id/faqs/:faqId/move-up
func (h *FAQHandler) MoveFAQUp(c *gin.Context) {
	h.move(c, h.faqService.MoveUp)
}

// POST /admin/properties/:id/faqs/:faqId/move-down
func (h *FAQHandler) MoveFAQDown(c *gin.Context) {
	h.move(c, h.faqService.MoveDown)
}

func (h *FAQHandler) move(c *gin.Context, mover func(propertyID, faqID uuid.UUID) ([]models.PropertyFAQ, error)) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	faqID, err := uuid.Parse(c.Param("faqId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid FAQ ID", nil)
		return
	}

	faqs, err := mover(propertyID, faqID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "FAQ not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"faqs": faqs,
	})
}
