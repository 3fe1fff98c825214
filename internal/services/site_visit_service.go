// internal/services/site_visit_service.go
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

type SiteVisitService struct {
	db *gorm.DB
}

// SubmitSiteVisitRequest carries no status field on purpose: submissions
// always start pending, whatever the caller sends.
type SubmitSiteVisitRequest struct {
	PropertyID   string `json:"property_id" validate:"required,uuid"`
	VisitorName  string `json:"visitor_name" validate:"required,min=2,max=100"`
	VisitorPhone string `json:"visitor_phone" validate:"required,phone"`
	VisitorEmail string `json:"visitor_email" validate:"required,email"`
	VisitDate    string `json:"visit_date" validate:"required,visit_date"`
	VisitTime    string `json:"visit_time" validate:"required,max=20"`
	Message      string `json:"message,omitempty"`
}

func NewSiteVisitService(db *gorm.DB) *SiteVisitService {
	return &SiteVisitService{db: db}
}

// Submit records a visit request with status pending and snapshots the
// property's display title into the record, so later property edits or
// deletions leave history intact.
func (s *SiteVisitService) Submit(req *SubmitSiteVisitRequest) (*models.SiteVisit, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	propertyName := property.Title
	if propertyName == "" {
		propertyName = untitledProperty
	}

	visit := &models.SiteVisit{
		PropertyID:   propertyID,
		PropertyName: propertyName,
		VisitorName:  req.VisitorName,
		VisitorPhone: req.VisitorPhone,
		VisitorEmail: req.VisitorEmail,
		VisitDate:    req.VisitDate,
		VisitTime:    req.VisitTime,
		Message:      req.Message,
		Status:       models.VisitStatusPending,
	}

	if err := s.db.Create(visit).Error; err != nil {
		return nil, fmt.Errorf("failed to create site visit: %w", err)
	}

	return visit, nil
}

// ListAll returns visit requests newest first for the admin dashboard.
func (s *SiteVisitService) ListAll(params utils.PaginationParams) ([]models.SiteVisit, int64, error) {
	query := s.db.Model(&models.SiteVisit{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(property_name) LIKE ? OR LOWER(visitor_name) LIKE ? OR LOWER(visitor_email) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count site visits: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var visits []models.SiteVisit
	if err := query.Find(&visits).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch site visits: %w", err)
	}

	return visits, total, nil
}

// SetStatus moves a visit through its lifecycle: pending to confirmed or
// cancelled, confirmed to completed or cancelled; completed and cancelled
// are terminal. Anything else returns ErrInvalidTransition.
func (s *SiteVisitService) SetStatus(id uuid.UUID, newStatus models.VisitStatus) (*models.SiteVisit, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	var visit models.SiteVisit
	if err := s.db.First(&visit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if visit.Status == newStatus {
		return &visit, nil
	}

	if !visit.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, visit.Status, newStatus)
	}

	if err := s.db.Model(&visit).Update("status", newStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to update site visit status: %w", err)
	}

	return &visit, nil
}
