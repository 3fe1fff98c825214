// internal/models/audit_log.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records mutating admin requests. Rows are written asynchronously
// and never updated.
type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID     `json:"user_id" gorm:"type:uuid;index"`
	Action       string         `json:"action" gorm:"not null"`
	ResourceType string         `json:"resource_type"`
	ResourceID   *uuid.UUID     `json:"resource_id" gorm:"type:uuid"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	RequestBody  datatypes.JSON `json:"request_body,omitempty" gorm:"type:jsonb"`
}
