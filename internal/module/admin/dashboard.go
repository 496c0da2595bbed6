package admin

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
)

// Dashboard aggregates the headline counts for the admin console.
func Dashboard(c *gin.Context) {
	var teamCount, submissionCount, evaluatedCount int64

	if err := database.DB.Model(&model.Team{}).Count(&teamCount).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&model.Submission{}).Count(&submissionCount).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&model.Evaluation{}).Count(&evaluatedCount).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	settings, err := model.GetOrCreateSettings(database.DB)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"teams":           teamCount,
		"submissions":     submissionCount,
		"evaluated":       evaluatedCount,
		"submissionsOpen": settings.SubmissionsOpen,
	})
}
