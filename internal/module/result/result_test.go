package result

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleResult{}).Init()
}

func seedTeam(t *testing.T, graded bool) model.Team {
	t.Helper()
	team := model.Team{
		TeamName: "Lookup Target",
		TeamID:   "AJCC-WD-4321",
		Category: model.CategoryFullStack,
		Members: []model.TeamMember{
			{StudentID: "S001", Name: "Asha Perera", Batch: "2026", Email: "asha@example.com"},
			{StudentID: "S002", Name: "Nimal Silva", Batch: "2026", Email: "nimal@example.com"},
		},
	}
	require.NoError(t, database.DB.Create(&team).Error)
	if graded {
		position := 1
		require.NoError(t, database.DB.Create(&model.Evaluation{
			TeamDbID:   team.ID,
			UIUx:       25,
			TotalMarks: 25,
			Percentage: 25,
			Grade:      "Fail",
			Position:   &position,
		}).Error)
	}
	return team
}

func TestLookupUnknownTeam(t *testing.T) {
	setup(t)

	resp, status := test.DoGet(t, Lookup, map[string]string{"teamId": "AJCC-WD-0000"})
	test.ErrorEqual(t, response.ErrTeamNotFound, resp)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Team not found", resp.Msg)
}

func TestLookupNotYetGraded(t *testing.T) {
	setup(t)
	seedTeam(t, false)

	resp, status := test.DoGet(t, Lookup, map[string]string{"teamId": "AJCC-WD-4321"})
	test.ErrorEqual(t, response.ErrResultsNotOut, resp)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Results not yet available for this team", resp.Msg)
}

func TestLookupGradedTeam(t *testing.T) {
	setup(t)
	seedTeam(t, true)

	resp, _ := test.DoGet(t, Lookup, map[string]string{"teamId": "AJCC-WD-4321"})
	test.NoError(t, resp)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Lookup Target", data["teamName"])
	require.Len(t, data["members"], 2)

	evaluation, ok := data["evaluation"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(25), evaluation["totalMarks"])
	require.Equal(t, float64(1), evaluation["position"])
}

func certificateRequest(t *testing.T, teamID, member string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test?member="+member, nil)
	c.Params = gin.Params{{Key: "teamId", Value: teamID}}
	CertificateForMember(c)
	return w
}

func TestCertificateByMemberName(t *testing.T) {
	setup(t)
	seedTeam(t, true)

	w := certificateRequest(t, "AJCC-WD-4321", "asha+perera")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")

	html := w.Body.String()
	require.Contains(t, html, "Asha Perera")
	require.Contains(t, html, "Achievement")
	require.Contains(t, html, "First Place")
}

func TestCertificateByEmailParticipation(t *testing.T) {
	setup(t)
	seedTeam(t, false)

	w := certificateRequest(t, "AJCC-WD-4321", "nimal@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	require.Contains(t, html, "Nimal Silva")
	require.Contains(t, html, "Participation")
	require.NotContains(t, html, "Place")
}

func TestCertificateUnknownMember(t *testing.T) {
	setup(t)
	seedTeam(t, true)

	w := certificateRequest(t, "AJCC-WD-4321", "stranger@example.com")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificateRequiresMemberParam(t *testing.T) {
	setup(t)
	seedTeam(t, true)

	w := certificateRequest(t, "AJCC-WD-4321", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderCertificateKinds(t *testing.T) {
	second := 2
	achievement, err := RenderCertificate(CertificateData{
		StudentName: "Asha Perera",
		TeamName:    "Alpha",
		Category:    model.CategoryFullStack,
		Position:    &second,
	})
	require.NoError(t, err)
	require.Contains(t, achievement, "Achievement")
	require.Contains(t, achievement, "Second Place")

	participation, err := RenderCertificate(CertificateData{
		StudentName: "Nimal Silva",
		TeamName:    "Alpha",
		Category:    model.CategoryWebDesign,
	})
	require.NoError(t, err)
	require.Contains(t, participation, "Participation")
	require.NotContains(t, participation, "Place")
}
