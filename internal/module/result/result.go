package result

import (
	"net/http"
	"strings"

	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Lookup returns a team with members and evaluation by its public id. The
// two 404s are deliberately distinct so a participant can tell a mistyped id
// from a team that simply has not been graded yet.
func Lookup(c *gin.Context) {
	teamID := c.Param("teamId")

	team, err := findTeam(teamID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if team.Evaluation == nil {
		response.Fail(c, response.ErrResultsNotOut)
		return
	}

	response.Success(c, team)
}

// CertificateForMember renders the printable certificate for one member of
// the team, identified by name or email via the member query parameter.
func CertificateForMember(c *gin.Context) {
	teamID := c.Param("teamId")
	member := strings.TrimSpace(c.Query("member"))
	if member == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("member query parameter required"))
		return
	}

	team, err := findTeam(teamID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var found *model.TeamMember
	for i := range team.Members {
		if strings.EqualFold(team.Members[i].Name, member) || strings.EqualFold(team.Members[i].Email, member) {
			found = &team.Members[i]
			break
		}
	}
	if found == nil {
		response.Fail(c, response.ErrNotFound.WithTips("no such team member"))
		return
	}

	var position *int
	if team.Evaluation != nil {
		position = team.Evaluation.Position
	}

	html, renderErr := RenderCertificate(CertificateData{
		StudentName: found.Name,
		TeamName:    team.TeamName,
		Category:    team.Category,
		Position:    position,
	})
	if renderErr != nil {
		log.Error("certificate render failed", "error", renderErr, "team_id", teamID)
		response.Fail(c, response.ErrInternal.WithOrigin(renderErr))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func findTeam(teamID string) (*model.Team, *response.Error) {
	var team model.Team
	err := database.DB.
		Where("team_id = ?", teamID).
		Preload("Members").
		Preload("Evaluation").
		First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, response.ErrTeamNotFound
	case err != nil:
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return &team, nil
}
