package models

import (
	"strings"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin seeds the first back-office account.
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)

	// If accounts already exist, make sure the default admin keeps the
	// super role.
	if count > 0 {
		if err := DB.Model(&Admin{}).Where("username = ?", "admin").Update("role", constants.AdminRoleSuper).Error; err != nil {
			logger.Warnw("ensure_default_admin_role_failed", "error", err)
		}
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         constants.AdminRoleAdmin,
	}
	if strings.EqualFold(strings.TrimSpace(username), "admin") {
		admin.Role = constants.AdminRoleSuper
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username, "password", password)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}

	return nil
}
