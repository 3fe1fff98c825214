// internal/services/faq_service.go
package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type FAQService struct {
	db *gorm.DB
}

type CreateFAQRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Order      int    `json:"order,omitempty" validate:"omitempty,min=1"`
}

type UpdateFAQRequest struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// FAQOrderUpdate is one half of an adjacent swap.
type FAQOrderUpdate struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

func (s *FAQService) ListByProperty(propertyID uuid.UUID) ([]models.PropertyFAQ, error) {
	var faqs []models.PropertyFAQ
	if err := s.db.Where("property_id = ?", propertyID).
		Order("display_order ASC").
		Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch FAQs: %w", err)
	}
	return faqs, nil
}

// Create inserts an FAQ. When no order is supplied it is appended after the
// property's current highest order (1 when the list is empty).
func (s *FAQService) Create(req *CreateFAQRequest) (*models.PropertyFAQ, error) {
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

	order := req.Order
	if order == 0 {
		var maxOrder *int
		if err := s.db.Model(&models.PropertyFAQ{}).
			Where("property_id = ?", propertyID).
			Select("MAX(display_order)").Scan(&maxOrder).Error; err != nil {
			return nil, fmt.Errorf("failed to determine FAQ order: %w", err)
		}
		if maxOrder != nil {
			order = *maxOrder + 1
		} else {
			order = 1
		}
	}

	faq := &models.PropertyFAQ{
		PropertyID:   propertyID,
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: order,
	}

	if err := s.db.Create(faq).Error; err != nil {
		return nil, fmt.Errorf("failed to create FAQ: %w", err)
	}

	return faq, nil
}

// Update changes question and answer only. Order changes go through Reorder.
func (s *FAQService) Update(id uuid.UUID, req *UpdateFAQRequest) (*models.PropertyFAQ, error) {
	var faq models.PropertyFAQ
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Question != "" {
		updates["question"] = req.Question
	}
	if req.Answer != "" {
		updates["answer"] = req.Answer
	}

	if len(updates) > 0 {
		if err := s.db.Model(&faq).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update FAQ: %w", err)
		}
	}

	return &faq, nil
}

func (s *FAQService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.PropertyFAQ{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete FAQ: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder writes a batch of order values in one transaction so that both
// halves of a swap commit or neither does.
func (s *FAQService) Reorder(pairs []FAQOrderUpdate) error {
	if len(pairs) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, pair := range pairs {
			result := tx.Model(&models.PropertyFAQ{}).
				Where("id = ?", pair.ID).
				Update("display_order", pair.Order)
			if result.Error != nil {
				return fmt.Errorf("failed to update FAQ order: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

// MoveUp swaps the FAQ with its predecessor in the property's sorted list.
// Moving the first item is a no-op. The re-sorted list is returned.
func (s *FAQService) MoveUp(propertyID, faqID uuid.UUID) ([]models.PropertyFAQ, error) {
	return s.moveBy(propertyID, faqID, -1)
}

// MoveDown swaps the FAQ with its successor in the property's sorted list.
// Moving the last item is a no-op. The re-sorted list is returned.
func (s *FAQService) MoveDown(propertyID, faqID uuid.UUID) ([]models.PropertyFAQ, error) {
	return s.moveBy(propertyID, faqID, 1)
}

func (s *FAQService) moveBy(propertyID, faqID uuid.UUID, offset int) ([]models.PropertyFAQ, error) {
	faqs, err := s.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range faqs {
		if faqs[i].ID == faqID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	neighbor := index + offset
	if neighbor < 0 || neighbor >= len(faqs) {
		// Already at the boundary
		return faqs, nil
	}

	faqs[index].DisplayOrder, faqs[neighbor].DisplayOrder =
		faqs[neighbor].DisplayOrder, faqs[index].DisplayOrder

	if err := s.Reorder([]FAQOrderUpdate{
		{ID: faqs[index].ID, Order: faqs[index].DisplayOrder},
		{ID: faqs[neighbor].ID, Order: faqs[neighbor].DisplayOrder},
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].DisplayOrder < faqs[j].DisplayOrder
	})
	return faqs, nil
}
