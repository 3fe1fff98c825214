// internal/models/favorite.go
package models

import (
	"github.com/google/uuid"
)

// Favorite joins a user to a saved property. Toggling inserts or removes the
// row; there are no additional attributes.
type Favorite struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
}
