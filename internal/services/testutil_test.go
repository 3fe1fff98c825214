// internal/services/testutil_test.go
package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps all pooled connections on the same
	// schema while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserRoleAssignment{},
		&models.Property{},
		&models.PropertyFAQ{},
		&models.SiteVisit{},
		&models.Favorite{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestProperty(t *testing.T, db *gorm.DB, title string) *models.Property {
	t.Helper()

	property := &models.Property{
		Title:      title,
		City:       "Pune",
		Location:   "Baner",
		Type:       "Apartment",
		Price:      "₹78.5 Lacs",
		Status:     "Under Construction",
		CarpetArea: "1000 sq.ft.",
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		FullName: "Test User",
		Email:    email,
	}
	require.NoError(t, user.SetPassword("TestPass123!"))
	require.NoError(t, db.Create(user).Error)
	return user
}
