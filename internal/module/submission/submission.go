package submission

import (
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/httpclient"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateReq struct {
	TeamName   string `json:"teamName"`
	TeamEmail  string `json:"teamEmail"`
	ProjectURL string `json:"projectUrl"`
	Notes      string `json:"notes"`
}

// ListSubmissions returns every submission with its team, newest first.
// Read-only admin listing.
func ListSubmissions(c *gin.Context) {
	var submissions []model.Submission
	err := database.DB.
		Preload("Team").
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		log.Error("submissions fetch failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, submissions)
}

// CreateSubmission records a team's one project submission. Preconditions in
// order: the global gate must be open (checked before the payload is even
// validated), required fields present, team exists, team has not submitted.
// The unique index on team_db_id rejects the second of two racing inserts.
func CreateSubmission(c *gin.Context) {
	settings, err := model.GetOrCreateSettings(database.DB)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !settings.SubmissionsOpen {
		response.Fail(c, response.ErrSubmissionsClosed)
		return
	}

	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.TeamName == "" || req.TeamEmail == "" || req.ProjectURL == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Missing required fields"))
		return
	}

	var team model.Team
	err = database.DB.Where("team_name = ?", req.TeamName).Preload("Submission").First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrTeamNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if team.Submission != nil {
		response.Fail(c, response.ErrHasSubmitted)
		return
	}

	submission := model.Submission{
		TeamDbID:   team.ID,
		TeamEmail:  req.TeamEmail,
		ProjectURL: req.ProjectURL,
		Notes:      req.Notes,
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		log.Error("submission create failed", "error", err, "team_name", req.TeamName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	team.Submission = nil
	submission.Team = &team

	log.Info("project submitted",
		"team_id", team.TeamID,
		"team_name", team.TeamName,
		"project_url", submission.ProjectURL)

	go probeProjectURL(team.TeamID, submission.ProjectURL)

	response.Created(c, submission)
}

// probeProjectURL checks that the submitted link answers at all, purely for
// the operator's benefit. Failures are logged, never surfaced to the team.
func probeProjectURL(teamID, url string) {
	if httpclient.Client == nil {
		return
	}
	resp, err := httpclient.Client.R().Head(url)
	if err != nil {
		log.Warn("project url unreachable", "team_id", teamID, "url", url, "error", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Warn("project url answered with error", "team_id", teamID, "url", url, "status", resp.StatusCode())
	}
}
