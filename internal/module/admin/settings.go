package admin

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the singleton settings row, creating it closed on the
// first read. Public: the submission form reads it to show open/closed state.
func GetSettings(c *gin.Context) {
	settings, err := model.GetOrCreateSettings(database.DB)
	if err != nil {
		log.Error("settings read failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, settings)
}

type UpdateSettingsReq struct {
	SubmissionsOpen *bool `json:"submissionsOpen" binding:"required"`
}

// UpdateSettings flips the submission gate. Admin only.
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	settings, err := model.GetOrCreateSettings(database.DB)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Model(&settings).Update("submissions_open", *req.SubmissionsOpen).Error; err != nil {
		log.Error("settings update failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	settings.SubmissionsOpen = *req.SubmissionsOpen

	log.Info("submission gate toggled", "submissions_open", settings.SubmissionsOpen)
	response.Success(c, settings)
}
