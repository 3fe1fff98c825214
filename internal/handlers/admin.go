// internal/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	storageService *services.StorageService
}

func NewAdminHandler(adminService *services.AdminService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		storageService: storageService,
	}
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(users, total, params)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.adminService.UpdateUser(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	requesterID, _ := utils.GetUserIDFromContext(c)
	if requesterID == id.String() {
		utils.BadRequestResponse(c, "Cannot delete your own account", nil)
		return
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "User deleted successfully",
	})
}

// POST /admin/media
func (h *AdminHandler) UploadMedia(c *gin.Context) {
	if !h.storageService.Enabled() {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Media storage is not configured", nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file uploaded", err.Error())
		return
	}
	defer file.Close()

	options := h.storageService.GetDefaultUploadOptions("properties")
	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		if errors.Is(err, services.ErrStorageDisabled) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Media storage is not configured", nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"key":  result.Key,
		"size": result.Size,
	}).Info("Media uploaded")

	utils.CreatedResponse(c, gin.H{
		"message": "File uploaded successfully",
		"file":    result,
	})
}

// DELETE /admin/media/*key
func (h *AdminHandler) DeleteMedia(c *gin.Context) {
	// The wildcard param carries a leading slash; the stored key does not.
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		utils.BadRequestResponse(c, "Missing file key", nil)
		return
	}

	if !h.storageService.Enabled() {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Media storage is not configured", nil)
		return
	}

	if err := h.storageService.DeleteFile(key); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "File deleted successfully",
	})
}
