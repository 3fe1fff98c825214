// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusConfirmed VisitStatus = "confirmed"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// visitTransitions is the allowed transition table for site visit statuses.
// Completed and cancelled are terminal.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitStatusPending:   {VisitStatusConfirmed, VisitStatusCancelled},
	VisitStatusConfirmed: {VisitStatusCompleted, VisitStatusCancelled},
}

func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusPending, VisitStatusConfirmed, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
