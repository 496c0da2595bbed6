package evaluation

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type resultRow struct {
	TeamID          string `excel:"Team ID"`
	TeamName        string `excel:"Team Name"`
	Category        string `excel:"Category"`
	UIUx            int    `excel:"UI/UX (25)"`
	CodeQuality     int    `excel:"Code Quality (25)"`
	FolderStructure int    `excel:"Folder Structure (20)"`
	Functionality   int    `excel:"Functionality (20)"`
	Innovation      int    `excel:"Innovation (10)"`
	TotalMarks      int    `excel:"Total"`
	Grade           string `excel:"Grade"`
	Position        *int   `excel:"Position"`
}

// ExportResults streams an xlsx of every evaluated team, ranked teams first.
func ExportResults(c *gin.Context) {
	var teams []model.Team
	err := database.DB.
		Preload("Evaluation").
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var rows []resultRow
	for _, t := range teams {
		if t.Evaluation == nil {
			continue
		}
		rows = append(rows, resultRow{
			TeamID:          t.TeamID,
			TeamName:        t.TeamName,
			Category:        t.Category,
			UIUx:            t.Evaluation.UIUx,
			CodeQuality:     t.Evaluation.CodeQuality,
			FolderStructure: t.Evaluation.FolderStructure,
			Functionality:   t.Evaluation.Functionality,
			Innovation:      t.Evaluation.Innovation,
			TotalMarks:      t.Evaluation.TotalMarks,
			Grade:           t.Evaluation.Grade,
			Position:        t.Evaluation.Position,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Results", rows); err != nil {
		log.Error("results export failed", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	if err := tools.SendExcel(c, f, "ajcc-results.xlsx"); err != nil {
		log.Error("results download failed", "error", err)
	}
}
