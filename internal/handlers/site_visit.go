// internal/handlers/site_visit.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type SiteVisitHandler struct {
	siteVisitService *services.SiteVisitService
}

func NewSiteVisitHandler(siteVisitService *services.SiteVisitService) *SiteVisitHandler {
	return &SiteVisitHandler{siteVisitService: siteVisitService}
}

// POST /site-visits
func (h *SiteVisitHandler) SubmitSiteVisit(c *gin.Context) {
	var req services.SubmitSiteVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	visit, err := h.siteVisitService.Submit(&req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Site visit requested successfully",
		"visit":   visit,
	})
}

// GET /admin/site-visits
func (h *SiteVisitHandler) GetSiteVisits(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	visits, total, err := h.siteVisitService.ListAll(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(visits, total, params)
	utils.PaginatedResponse(c, result)
}

type updateVisitStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PUT /admin/site-visits/:id/status
func (h *SiteVisitHandler) UpdateSiteVisitStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid site visit ID", nil)
		return
	}

	var req updateVisitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	visit, err := h.siteVisitService.SetStatus(id, models.VisitStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, "Site visit not found")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.BadRequestResponse(c, "Unknown visit status", req.Status)
		case errors.Is(err, services.ErrInvalidTransition):
			utils.ConflictResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Site visit status updated successfully",
		"visit":   visit,
	})
}
