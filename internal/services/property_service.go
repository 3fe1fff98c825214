// internal/services/property_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type PropertyService struct {
	db *gorm.DB
}

type CreatePropertyRequest struct {
	Title             string   `json:"title" validate:"required,min=3,max=255"`
	Description       string   `json:"description,omitempty"`
	City              string   `json:"city,omitempty" validate:"omitempty,max=100"`
	Location          string   `json:"location,omitempty" validate:"omitempty,max=255"`
	Type              string   `json:"type,omitempty" validate:"omitempty,max=100"`
	About             string   `json:"about,omitempty"`
	Price             string   `json:"price,omitempty" validate:"omitempty,max=100"`
	Status            string   `json:"status,omitempty" validate:"omitempty,max=100"`
	CarpetArea        string   `json:"carpet_area,omitempty" validate:"omitempty,max=100"`
	Bedrooms          *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms         *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	PropertyImgURL1   string   `json:"property_img_url_1,omitempty" validate:"omitempty,url"`
	PropertyImgURL2   string   `json:"property_img_url_2,omitempty" validate:"omitempty,url"`
	PropertyVidURL    string   `json:"property_vid_url,omitempty" validate:"omitempty,url"`
	ReraInfo          string   `json:"rera_info,omitempty"`
	BuilderID         string   `json:"builder_id,omitempty" validate:"omitempty,uuid"`
	MediaURLs         []string `json:"media_urls,omitempty"`
	FeaturesAmenities []string `json:"features_amenities,omitempty"`
	ProjectHighlights []string `json:"project_highlights,omitempty"`
}

type UpdatePropertyRequest struct {
	Title             string   `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description       *string  `json:"description,omitempty"`
	City              string   `json:"city,omitempty" validate:"omitempty,max=100"`
	Location          string   `json:"location,omitempty" validate:"omitempty,max=255"`
	Type              string   `json:"type,omitempty" validate:"omitempty,max=100"`
	About             *string  `json:"about,omitempty"`
	Price             string   `json:"price,omitempty" validate:"omitempty,max=100"`
	Status            string   `json:"status,omitempty" validate:"omitempty,max=100"`
	CarpetArea        string   `json:"carpet_area,omitempty" validate:"omitempty,max=100"`
	Bedrooms          *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms         *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	PropertyImgURL1   string   `json:"property_img_url_1,omitempty" validate:"omitempty,url"`
	PropertyImgURL2   string   `json:"property_img_url_2,omitempty" validate:"omitempty,url"`
	PropertyVidURL    string   `json:"property_vid_url,omitempty" validate:"omitempty,url"`
	ReraInfo          *string  `json:"rera_info,omitempty"`
	MediaURLs         []string `json:"media_urls,omitempty"`
	FeaturesAmenities []string `json:"features_amenities,omitempty"`
	ProjectHighlights []string `json:"project_highlights,omitempty"`
}

type PropertySearchParams struct {
	utils.PaginationParams
	City   string `json:"city,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) ListProperties(params PropertySearchParams) ([]models.PropertyData, int64, error) {
	query := s.db.Model(&models.Property{})

	if params.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(params.City))
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "city"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return NormalizeProperties(properties), total, nil
}

func (s *PropertyService) GetProperty(id uuid.UUID) (*models.PropertyData, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	data := NormalizeProperty(&property)
	return &data, nil
}

func (s *PropertyService) CreateProperty(req *CreatePropertyRequest) (*models.PropertyData, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	property := &models.Property{
		Title:             req.Title,
		Description:       req.Description,
		City:              req.City,
		Location:          req.Location,
		Type:              req.Type,
		About:             req.About,
		Price:             req.Price,
		Status:            req.Status,
		CarpetArea:        req.CarpetArea,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		PropertyImgURL1:   req.PropertyImgURL1,
		PropertyImgURL2:   req.PropertyImgURL2,
		PropertyVidURL:    req.PropertyVidURL,
		ReraInfo:          req.ReraInfo,
		MediaURLs:         EncodeStringList(req.MediaURLs),
		FeaturesAmenities: EncodeStringList(req.FeaturesAmenities),
		ProjectHighlights: EncodeStringList(req.ProjectHighlights),
	}

	if req.BuilderID != "" {
		builderID, err := uuid.Parse(req.BuilderID)
		if err != nil {
			return nil, fmt.Errorf("invalid builder ID: %w", err)
		}
		property.BuilderID = &builderID
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	data := NormalizeProperty(property)
	return &data, nil
}

func (s *PropertyService) UpdateProperty(id uuid.UUID, req *UpdatePropertyRequest) (*models.PropertyData, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if req.Price != "" {
		updates["price"] = req.Price
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.CarpetArea != "" {
		updates["carpet_area"] = req.CarpetArea
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.PropertyImgURL1 != "" {
		updates["property_img_url_1"] = req.PropertyImgURL1
	}
	if req.PropertyImgURL2 != "" {
		updates["property_img_url_2"] = req.PropertyImgURL2
	}
	if req.PropertyVidURL != "" {
		updates["property_vid_url"] = req.PropertyVidURL
	}
	if req.ReraInfo != nil {
		updates["rera_info"] = *req.ReraInfo
	}
	if req.MediaURLs != nil {
		updates["media_urls"] = EncodeStringList(req.MediaURLs)
	}
	if req.FeaturesAmenities != nil {
		updates["features_amenities"] = EncodeStringList(req.FeaturesAmenities)
	}
	if req.ProjectHighlights != nil {
		updates["project_highlights"] = EncodeStringList(req.ProjectHighlights)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&property).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update property: %w", err)
		}
	}

	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload property: %w", err)
	}

	data := NormalizeProperty(&property)
	return &data, nil
}

func (s *PropertyService) DeleteProperty(id uuid.UUID) error {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	// FAQs go with the property; site visits keep their denormalized
	// property name and stay behind as history.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyFAQ{}).Error; err != nil {
			return fmt.Errorf("failed to delete property FAQs: %w", err)
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete property favorites: %w", err)
		}
		if err := tx.Delete(&property).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}
		return nil
	})
}
