// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"size:100"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Phone        string     `json:"phone" gorm:"size:20"`
	AvatarURL    string     `json:"avatar_url" gorm:"size:512"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// UserRoleAssignment maps a user to a role. Consulted at login and on every
// admin-route entry; users without a row are treated as plain users.
type UserRoleAssignment struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Role   UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
}

func (UserRoleAssignment) TableName() string {
	return "user_roles"
}
