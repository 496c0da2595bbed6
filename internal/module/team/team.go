package team

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MemberReq struct {
	StudentID string `json:"studentId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Batch     string `json:"batch" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type RegisterReq struct {
	TeamName string      `json:"teamName" binding:"required"`
	Category string      `json:"category" binding:"required"`
	Members  []MemberReq `json:"members" binding:"required,dive"`
}

// ListTeams returns every team with members, submission and evaluation,
// newest first. Used by the admin teams table.
func ListTeams(c *gin.Context) {
	var teams []model.Team
	err := database.DB.
		Preload("Members").
		Preload("Submission").
		Preload("Evaluation").
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		log.Error("teams fetch failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, teams)
}

// Register creates a team with 2-4 members. Checks run in a fixed order:
// member count, team name taken, duplicate emails within the request, then
// each email against every existing member row (first conflict reported).
// The team and its members are written in one transaction; the unique
// indexes on team name, team id and member email are the safety net under
// racing requests.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if len(req.Members) < 2 || len(req.Members) > 4 {
		response.Fail(c, response.ErrTeamSize)
		return
	}
	if req.Category != model.CategoryFullStack && req.Category != model.CategoryWebDesign {
		response.Fail(c, response.ErrInvalidRequest.WithTips("unknown category"))
		return
	}

	var existing model.Team
	err := database.DB.Where("team_name = ?", req.TeamName).First(&existing).Error
	if err == nil {
		response.Fail(c, response.ErrTeamExists)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	seen := make(map[string]struct{}, len(req.Members))
	for _, m := range req.Members {
		seen[m.Email] = struct{}{}
	}
	if len(seen) != len(req.Members) {
		response.Fail(c, response.ErrDuplicateEmail)
		return
	}

	for _, m := range req.Members {
		var taken model.TeamMember
		err := database.DB.Where("email = ?", m.Email).First(&taken).Error
		if err == nil {
			response.Fail(c, response.ErrMemberTaken.WithTips(m.Email))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	teamID, err := uniqueTeamID(req.Category)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	team := model.Team{
		TeamName: req.TeamName,
		TeamID:   teamID,
		Category: req.Category,
	}
	for _, m := range req.Members {
		team.Members = append(team.Members, model.TeamMember{
			StudentID: m.StudentID,
			Name:      m.Name,
			Batch:     m.Batch,
			Email:     m.Email,
		})
	}

	// Associated members are inserted in the same transaction as the team.
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&team).Error
	}); err != nil {
		log.Error("team create failed", "error", err, "team_name", req.TeamName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("team registered",
		"team_id", team.TeamID,
		"team_name", team.TeamName,
		"category", team.Category,
		"members", len(team.Members))

	response.Created(c, team)
}

// uniqueTeamID regenerates candidates until one is free. The 4-digit space
// makes collisions rare; exhaustion is not handled.
func uniqueTeamID(category string) (string, error) {
	for {
		candidate := generateTeamID(category)
		var count int64
		if err := database.DB.Model(&model.Team{}).Where("team_id = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}
