package admin

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	seedUsername = "admin"
	seedPassword = "123456"
)

// Seed bootstraps the default admin account and the settings row. Idempotent:
// an existing admin short-circuits, settings are only created when absent.
func Seed(c *gin.Context) {
	var existing model.Admin
	err := database.DB.First(&existing).Error
	switch {
	case err == nil:
		response.Success(c, gin.H{"message": "Admin already exists"})
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	admin := model.Admin{
		Username: seedUsername,
		Password: tools.PasswordEncrypt(seedPassword),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Error("seed admin failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if _, err := model.GetOrCreateSettings(database.DB); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("default admin seeded", "username", seedUsername)
	response.Success(c, gin.H{"message": "Admin seeded successfully"})
}
