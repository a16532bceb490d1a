package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a back-office account.
type Admin struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                        // primary key
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`                        // login name
	PasswordHash string         `gorm:"not null" json:"-"`                                           // bcrypt hash, never serialized
	Role         string         `gorm:"type:varchar(30);not null;default:'admin';index" json:"role"` // admin/super_admin
	LastLoginAt  *time.Time     `json:"last_login_at"`                                               // last successful login
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                     // creation time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                              // soft delete time
}

// TableName names the table.
func (Admin) TableName() string {
	return "admins"
}
