// internal/services/favorite_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countQueries registers a callback that counts SELECTs issued through db.
func countQueries(t *testing.T, db *gorm.DB) *int {
	t.Helper()

	count := 0
	err := db.Callback().Query().After("gorm:query").Register("test:count_queries", func(tx *gorm.DB) {
		count++
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Callback().Query().Remove("test:count_queries")
	})
	return &count
}

func TestListFavoritesEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "asha@example.com")

	queries := countQueries(t, db)

	favorites, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)

	// No favorites means the property fetch is skipped entirely
	assert.Equal(t, 1, *queries)
}

func TestListFavoritesResolvesProperties(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "asha@example.com")
	first := createTestProperty(t, db, "Skyline Residency")
	second := createTestProperty(t, db, "Green Acres")

	_, err := svc.Toggle(user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(user.ID, second.ID)
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	titles := []string{favorites[0].Title, favorites[1].Title}
	assert.ElementsMatch(t, []string{"Skyline Residency", "Green Acres"}, titles)

	// Collections come back as native lists even when unset
	assert.NotNil(t, favorites[0].MediaURLs)
	assert.NotNil(t, favorites[0].FeaturesAmenities)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "asha@example.com")
	property := createTestProperty(t, db, "Skyline Residency")

	favorited, err := svc.Toggle(user.ID, property.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.Toggle(user.ID, property.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	favorites, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoriteUnknownProperty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "asha@example.com")
	property := createTestProperty(t, db, "Skyline Residency")

	require.NoError(t, db.Delete(property).Error)

	_, err := svc.Toggle(user.ID, property.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
