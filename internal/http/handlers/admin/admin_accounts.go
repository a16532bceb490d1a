package admin

import (
	"net/http"
	"strings"

	"github.com/reborn-nursery/storefront/internal/constants"
	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminAccountRequest is the create payload for a back-office account.
type AdminAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// GetAdminAccounts lists back-office accounts.
func (h *Handler) GetAdminAccounts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	admins, total, err := h.AdminRepo.List(repository.AdminListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("search"),
		Role:     c.Query("role"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch admin accounts", err)
		return
	}
	response.SuccessWithPage(c, admins, handlershared.BuildPagination(page, pageSize, total))
}

// CreateAdminAccount registers a back-office account and binds its role.
func (h *Handler) CreateAdminAccount(c *gin.Context) {
	var req AdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	username := strings.TrimSpace(req.Username)
	if len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "Password must be at least 8 characters", nil)
		return
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = constants.AdminRoleAdmin
	}
	if role != constants.AdminRoleAdmin && role != constants.AdminRoleSuper {
		respondError(c, http.StatusBadRequest, "Unknown role", nil)
		return
	}

	existing, err := h.AdminRepo.GetByUsername(username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create admin account", err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusConflict, "Username already in use", nil)
		return
	}

	hash, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create admin account", err)
		return
	}

	account := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.AdminRepo.Create(account); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create admin account", err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(account.ID, []string{role}); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to assign role", err)
		return
	}

	response.Created(c, account)
}

// DeleteAdminAccount removes a back-office account. Accounts cannot
// delete themselves.
func (h *Handler) DeleteAdminAccount(c *gin.Context) {
	callerID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if id == callerID {
		respondError(c, http.StatusBadRequest, "Cannot delete your own account", nil)
		return
	}

	account, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete admin account", err)
		return
	}
	if account == nil {
		respondError(c, http.StatusNotFound, "Record not found", nil)
		return
	}

	if err := h.AdminRepo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete admin account", err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(id, nil); err != nil {
		handlershared.RequestLog(c).Warnw("admin_account_role_cleanup_failed", "admin_id", id, "error", err)
	}
	response.NoContent(c)
}
