package evaluation

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type EvaluateReq struct {
	TeamDbID        uint `json:"teamDbId" binding:"required"`
	UIUx            int  `json:"uiUx"`
	CodeQuality     int  `json:"codeQuality"`
	FolderStructure int  `json:"folderStructure"`
	Functionality   int  `json:"functionality"`
	Innovation      int  `json:"innovation"`
}

// Evaluate upserts a team's scores and re-ranks its whole category. Missing
// criterion values default to zero; magnitudes are the grader's call. The
// returned evaluation reflects the position assigned by the re-rank.
func Evaluate(c *gin.Context) {
	var req EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips("Team ID required"))
		return
	}

	var team model.Team
	err := database.DB.First(&team, req.TeamDbID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrTeamNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	totalMarks := req.UIUx + req.CodeQuality + req.FolderStructure + req.Functionality + req.Innovation
	percentage := totalMarks // the five maxima sum to 100

	fields := map[string]interface{}{
		"ui_ux":            req.UIUx,
		"code_quality":     req.CodeQuality,
		"folder_structure": req.FolderStructure,
		"functionality":    req.Functionality,
		"innovation":       req.Innovation,
		"total_marks":      totalMarks,
		"percentage":       percentage,
		"grade":            gradeFor(percentage),
	}

	var evaluation model.Evaluation
	err = database.DB.Where("team_db_id = ?", team.ID).First(&evaluation).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		evaluation = model.Evaluation{
			TeamDbID:        team.ID,
			UIUx:            req.UIUx,
			CodeQuality:     req.CodeQuality,
			FolderStructure: req.FolderStructure,
			Functionality:   req.Functionality,
			Innovation:      req.Innovation,
			TotalMarks:      totalMarks,
			Percentage:      percentage,
			Grade:           gradeFor(percentage),
		}
		if err := database.DB.Create(&evaluation).Error; err != nil {
			log.Error("evaluation create failed", "error", err, "team_db_id", team.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	default:
		if err := database.DB.Model(&evaluation).Updates(fields).Error; err != nil {
			log.Error("evaluation update failed", "error", err, "team_db_id", team.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	if err := rerankCategory(team.Category); err != nil {
		log.Error("category re-rank failed", "error", err, "category", team.Category)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// Re-read so the response carries the position the re-rank just assigned.
	if err := database.DB.Where("team_db_id = ?", team.ID).First(&evaluation).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("team evaluated",
		"team_id", team.TeamID,
		"category", team.Category,
		"total_marks", evaluation.TotalMarks,
		"grade", evaluation.Grade)

	response.Success(c, evaluation)
}
