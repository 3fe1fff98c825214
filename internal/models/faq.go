// internal/models/faq.go
package models

import (
	"github.com/google/uuid"
)

// PropertyFAQ is a question/answer entry scoped to a property. DisplayOrder
// drives the UI sequence; the only supported reordering primitive is an
// adjacent swap committed through FAQService.Reorder.
type PropertyFAQ struct {
	BaseModel
	PropertyID   uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	Question     string    `json:"question" gorm:"type:text;not null"`
	Answer       string    `json:"answer" gorm:"type:text;not null"`
	DisplayOrder int       `json:"order" gorm:"column:display_order;not null;default:0"`
}
