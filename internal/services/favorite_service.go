// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// ListFavorites resolves the user's saved property IDs into full normalized
// property records. A user with no favorites gets an empty slice without a
// second query.
func (s *FavoriteService) ListFavorites(userID uuid.UUID) ([]models.PropertyData, error) {
	var propertyIDs []uuid.UUID
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("property_id", &propertyIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	if len(propertyIDs) == 0 {
		return []models.PropertyData{}, nil
	}

	var properties []models.Property
	if err := s.db.Where("id IN ?", propertyIDs).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorite properties: %w", err)
	}

	return NormalizeProperties(properties), nil
}

// Toggle saves or removes the favorite and reports the resulting state:
// true when the property is now a favorite.
func (s *FavoriteService) Toggle(userID, propertyID uuid.UUID) (bool, error) {
	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&favorite).Error

	if err == nil {
		if err := s.db.Delete(&favorite).Error; err != nil {
			return true, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("database error: %w", err)
	}

	favorite = models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	return true, nil
}
