// internal/models/site_visit.go
package models

import (
	"github.com/google/uuid"
)

// SiteVisit is a visit request submitted from a property page. PropertyName
// is a snapshot of the property title at submission time so that later
// property edits or deletions do not corrupt historical records.
type SiteVisit struct {
	BaseModel
	PropertyID   uuid.UUID   `json:"property_id" gorm:"type:uuid;not null;index"`
	PropertyName string      `json:"property_name" gorm:"size:255"`
	VisitorName  string      `json:"visitor_name" gorm:"size:100;not null"`
	VisitorPhone string      `json:"visitor_phone" gorm:"size:20;not null"`
	VisitorEmail string      `json:"visitor_email" gorm:"size:255;not null"`
	VisitDate    string      `json:"visit_date" gorm:"size:20;not null"`
	VisitTime    string      `json:"visit_time" gorm:"size:20;not null"`
	Message      string      `json:"message" gorm:"type:text"`
	Status       VisitStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}
