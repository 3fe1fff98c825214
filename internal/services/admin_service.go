// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalProperties    int64 `json:"total_properties"`
	TotalUsers         int64 `json:"total_users"`
	NewUsersThisMonth  int64 `json:"new_users_this_month"`
	TotalSiteVisits    int64 `json:"total_site_visits"`
	PendingSiteVisits  int64 `json:"pending_site_visits"`
	UpcomingSiteVisits int64 `json:"upcoming_site_visits"`
	TotalFavorites     int64 `json:"total_favorites"`
}

type AdminUserData struct {
	models.User
	Role models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	FullName string          `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string          `json:"phone,omitempty" validate:"omitempty,phone"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	s.db.Model(&models.Property{}).Count(&stats.TotalProperties)
	s.db.Model(&models.User{}).Count(&stats.TotalUsers)
	s.db.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&stats.NewUsersThisMonth)
	s.db.Model(&models.SiteVisit{}).Count(&stats.TotalSiteVisits)
	s.db.Model(&models.SiteVisit{}).
		Where("status = ?", models.VisitStatusPending).
		Count(&stats.PendingSiteVisits)
	s.db.Model(&models.SiteVisit{}).
		Where("status = ?", models.VisitStatusConfirmed).
		Count(&stats.UpcomingSiteVisits)
	s.db.Model(&models.Favorite{}).Count(&stats.TotalFavorites)

	return stats, nil
}

func (s *AdminService) ListUsers(params utils.PaginationParams) ([]AdminUserData, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "email", "full_name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	out := make([]AdminUserData, 0, len(users))
	for i := range users {
		role := models.RoleUser
		var assignment models.UserRoleAssignment
		if err := s.db.Where("user_id = ?", users[i].ID).First(&assignment).Error; err == nil {
			role = assignment.Role
		}
		out = append(out, AdminUserData{User: users[i], Role: role})
	}

	return out, total, nil
}

func (s *AdminService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*AdminUserData, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	role := models.RoleUser
	if req.Role != "" {
		if err := s.upsertRole(user.ID, req.Role); err != nil {
			return nil, err
		}
		role = req.Role
	} else {
		var assignment models.UserRoleAssignment
		if err := s.db.Where("user_id = ?", user.ID).First(&assignment).Error; err == nil {
			role = assignment.Role
		}
	}

	return &AdminUserData{User: user, Role: role}, nil
}

func (s *AdminService) DeleteUser(id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete user favorites: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRoleAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete user role: %w", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

func (s *AdminService) upsertRole(userID uuid.UUID, role models.UserRole) error {
	var assignment models.UserRoleAssignment
	err := s.db.Where("user_id = ?", userID).First(&assignment).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		assignment = models.UserRoleAssignment{UserID: userID, Role: role}
		if err := s.db.Create(&assignment).Error; err != nil {
			return fmt.Errorf("failed to assign role: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check role: %w", err)
	}

	if err := s.db.Model(&assignment).Update("role", role).Error; err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}
