package admin

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/jwt"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/global/session"
	"ajcc-portal/internal/model"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies admin credentials and issues the session cookie. Unknown
// usernames and wrong passwords get the same response.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips("Username and password required"))
		return
	}

	var admin model.Admin
	err := database.DB.Where("username = ?", req.Username).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("login attempt for unknown admin", "username", req.Username, "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidPassword)
		return
	case err != nil:
		log.Error("admin lookup failed", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, admin.Password) {
		log.Warn("wrong password", "username", req.Username, "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	token, claims := jwt.CreateToken(jwt.Payload{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
	if err := session.Register(c.Request.Context(), claims); err != nil {
		log.Error("session register failed", "error", err, "admin_id", admin.ID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	jwt.SetAuthCookie(c, token)

	log.Info("admin logged in", "admin_id", admin.ID, "username", admin.Username)

	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"token":    token,
	})
}

// Logout revokes the current session and clears the cookie.
func Logout(c *gin.Context) {
	claims, exists := jwt.GetAdminPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	if err := session.Revoke(c.Request.Context(), claims); err != nil {
		log.Error("session revoke failed", "error", err, "admin_id", claims.AdminID)
	}
	jwt.ClearAuthCookie(c)
	response.Success(c)
}

// Me returns the authenticated admin's id and username.
func Me(c *gin.Context) {
	claims, exists := jwt.GetAdminPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var admin model.Admin
	err := database.DB.First(&admin, claims.AdminID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrAdminNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

type UpdateCredentialsReq struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"`
}

// UpdateCredentials changes the admin's username and/or password after
// verifying the current password. Other live sessions are revoked so stale
// cookies stop working.
func UpdateCredentials(c *gin.Context) {
	claims, exists := jwt.GetAdminPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateCredentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var admin model.Admin
	err := database.DB.First(&admin, claims.AdminID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrAdminNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.CurrentPassword, admin.Password) {
		log.Warn("credential change with wrong password", "admin_id", admin.ID)
		response.Fail(c, response.ErrWrongPassword)
		return
	}

	updates := map[string]interface{}{}
	if req.Username != "" && req.Username != admin.Username {
		updates["username"] = req.Username
	}
	if req.NewPassword != "" {
		updates["password"] = tools.PasswordEncrypt(req.NewPassword)
	}
	if len(updates) == 0 {
		response.Success(c, gin.H{"message": "No changes"})
		return
	}

	if err := database.DB.Model(&admin).Updates(updates).Error; err != nil {
		log.Error("credential update failed", "error", err, "admin_id", admin.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := session.RevokeAdminExcept(c.Request.Context(), admin.ID, claims.Id); err != nil {
		log.Error("session revocation failed", "error", err, "admin_id", admin.ID)
	}

	log.Info("admin credentials updated", "admin_id", admin.ID)
	response.Success(c)
}
