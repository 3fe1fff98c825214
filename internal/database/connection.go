// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/config"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserRoleAssignment{},
		&models.Property{},
		&models.PropertyFAQ{},
		&models.SiteVisit{},
		&models.Favorite{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_properties_city_type ON properties(city, type)",
		"CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_property_faqs_property_order ON property_faqs(property_id, display_order)",
		"CREATE INDEX IF NOT EXISTS idx_site_visits_created_at ON site_visits(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_site_visits_status ON site_visits(status)",
		"CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the default admin account when none exists.
func SeedInitialData(db *gorm.DB) error {
	var adminCount int64
	db.Model(&models.UserRoleAssignment{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)

	if adminCount > 0 {
		return nil
	}

	admin := &models.User{
		FullName: "Site Administrator",
		Email:    "admin@dreamhome.local",
	}
	if err := admin.SetPassword("ChangeMe123!"); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	role := &models.UserRoleAssignment{
		UserID: admin.ID,
		Role:   models.RoleAdmin,
	}
	if err := db.Create(role).Error; err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	logrus.Info("Default admin user created")
	return nil
}
