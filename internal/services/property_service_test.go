// internal/services/property_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

func TestCreatePropertyEncodesCollections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	data, err := svc.CreateProperty(&CreatePropertyRequest{
		Title:             "Skyline Residency",
		City:              "Pune",
		Price:             "₹78.5 Lacs",
		CarpetArea:        "1000 sq.ft.",
		FeaturesAmenities: []string{"Gym", "Pool"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Gym", "Pool"}, data.FeaturesAmenities)
	assert.Equal(t, []string{}, data.MediaURLs)
	assert.Equal(t, []string{}, data.ProjectHighlights)

	// The stored column is a native JSON array
	var row models.Property
	require.NoError(t, db.First(&row, "id = ?", data.ID).Error)
	assert.JSONEq(t, `["Gym","Pool"]`, string(row.FeaturesAmenities))
}

func TestCreatePropertyValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	_, err := svc.CreateProperty(&CreatePropertyRequest{Title: "ab"})
	assert.Error(t, err)
}

func TestGetPropertyNormalizesLegacyRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	// Older rows stored collections as an array encoded inside a string
	legacy := &models.Property{
		Title:             "Green Acres",
		FeaturesAmenities: datatypes.JSON(`"[\"Garden\",\"Clubhouse\"]"`),
		ProjectHighlights: datatypes.JSON(`"not json at all"`),
	}
	require.NoError(t, db.Create(legacy).Error)

	data, err := svc.GetProperty(legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Garden", "Clubhouse"}, data.FeaturesAmenities)
	assert.Equal(t, []string{}, data.ProjectHighlights)
}

func TestGetPropertyNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	_, err := svc.GetProperty(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPropertiesFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	require.NoError(t, db.Create(&models.Property{Title: "Pune Flat", City: "Pune", Type: "Apartment"}).Error)
	require.NoError(t, db.Create(&models.Property{Title: "Nagpur Villa", City: "Nagpur", Type: "Villa"}).Error)

	params := PropertySearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
		City:             "pune",
	}
	results, total, err := svc.ListProperties(params)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Pune Flat", results[0].Title)
}

func TestListPropertiesSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	require.NoError(t, db.Create(&models.Property{Title: "Skyline Residency", Location: "Baner"}).Error)
	require.NoError(t, db.Create(&models.Property{Title: "Green Acres", Location: "Wardha Road"}).Error)

	params := PropertySearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc", Search: "skyline"},
	}
	results, total, err := svc.ListProperties(params)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Skyline Residency", results[0].Title)
}

func TestUpdatePropertyPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)
	property := createTestProperty(t, db, "Skyline Residency")

	data, err := svc.UpdateProperty(property.ID, &UpdatePropertyRequest{
		Price:           "₹82 Lacs",
		PropertyImgURL1: "https://cdn.example.com/hero.jpg",
		MediaURLs:       []string{"https://cdn.example.com/1.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "₹82 Lacs", data.Price)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", data.PropertyImgURL1)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, data.MediaURLs)
	// Untouched fields survive
	assert.Equal(t, "Skyline Residency", data.Title)
	assert.Equal(t, "Pune", data.City)
}

func TestDeletePropertyCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)
	faqSvc := NewFAQService(db)
	visitSvc := NewSiteVisitService(db)
	favSvc := NewFavoriteService(db)

	property := createTestProperty(t, db, "Skyline Residency")
	user := createTestUser(t, db, "asha@example.com")

	seedFAQs(t, faqSvc, property.ID, "Q1", "Q2")
	visit := submitTestVisit(t, visitSvc, property.ID)
	_, err := favSvc.Toggle(user.ID, property.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(property.ID))

	var faqCount, favCount int64
	db.Model(&models.PropertyFAQ{}).Where("property_id = ?", property.ID).Count(&faqCount)
	db.Model(&models.Favorite{}).Where("property_id = ?", property.ID).Count(&favCount)
	assert.EqualValues(t, 0, faqCount)
	assert.EqualValues(t, 0, favCount)

	// Visit history stays behind with the snapshotted name
	var kept models.SiteVisit
	require.NoError(t, db.First(&kept, "id = ?", visit.ID).Error)
	assert.Equal(t, "Skyline Residency", kept.PropertyName)

	assert.ErrorIs(t, svc.DeleteProperty(property.ID), ErrNotFound)
}
