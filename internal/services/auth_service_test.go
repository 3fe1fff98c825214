// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/config"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{
		FullName: "Asha Kulkarni",
		Email:    "asha@example.com",
		Password: "StrongPass1!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleUser, resp.Role)

	login, err := svc.Login(&LoginRequest{
		Email:    "asha@example.com",
		Password: "StrongPass1!",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	req := &RegisterRequest{
		FullName: "Asha Kulkarni",
		Email:    "asha@example.com",
		Password: "StrongPass1!",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorContains(t, err, "already exists")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	utils.SetJWTSecret("test-secret")

	resp, err := svc.Register(&RegisterRequest{
		FullName: "Asha Kulkarni",
		Email:    "asha@example.com",
		Password: "StrongPass1!",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createTestUser(t, db, "asha@example.com")

	updated, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{
		FullName: "Asha S. Kulkarni",
		Phone:    "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha S. Kulkarni", updated.FullName)
	assert.Equal(t, "9876543210", updated.Phone)
	// Email is not self-service and stays put
	assert.Equal(t, "asha@example.com", updated.Email)

	_, err = svc.UpdateProfile(user.ID, &UpdateProfileRequest{Phone: "nope"})
	assert.Error(t, err)

	_, err = svc.UpdateProfile(uuid.New(), &UpdateProfileRequest{FullName: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAvatarURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createTestUser(t, db, "asha@example.com")

	updated, err := svc.SetAvatarURL(user.ID, "https://cdn.example.com/avatars/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/a.jpg", updated.AvatarURL)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "https://cdn.example.com/avatars/a.jpg", stored.AvatarURL)

	_, err = svc.SetAvatarURL(uuid.New(), "https://cdn.example.com/avatars/b.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveRoleDefaultsToUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createTestUser(t, db, "asha@example.com")

	role, err := svc.ResolveRole(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	require.NoError(t, db.Create(&models.UserRoleAssignment{
		UserID: user.ID,
		Role:   models.RoleAdmin,
	}).Error)

	role, err = svc.ResolveRole(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}
