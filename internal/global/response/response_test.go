package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ajcc-portal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, mode config.Mode, fn func(c *gin.Context)) (ResponseBody, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{Mode: mode, JWT: config.JWT{Secret: "test-secret", Expire: 3600}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body, w.Code
}

func TestSuccessEnvelope(t *testing.T) {
	body, status := record(t, config.ModeDebug, func(c *gin.Context) {
		Success(c, gin.H{"hello": "world"})
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int32(200), body.Code)
	require.Equal(t, "success", body.Msg)
	require.Equal(t, map[string]any{"hello": "world"}, body.Data)
}

func TestCreatedStatus(t *testing.T) {
	_, status := record(t, config.ModeDebug, func(c *gin.Context) {
		Created(c)
	})
	require.Equal(t, http.StatusCreated, status)
}

func TestFailCodedError(t *testing.T) {
	body, status := record(t, config.ModeRelease, func(c *gin.Context) {
		Fail(c, ErrTeamNotFound)
	})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, ErrTeamNotFound.Code, body.Code)
	require.Equal(t, "Team not found", body.Msg)
}

func TestFailMasksUnknownErrors(t *testing.T) {
	body, status := record(t, config.ModeRelease, func(c *gin.Context) {
		Fail(c, fmt.Errorf("connection reset by peer"))
	})
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, ErrInternal.Code, body.Code)
	require.NotContains(t, body.Msg, "connection reset")
	require.Nil(t, body.Data)
}

func TestFailDebugExposesOrigin(t *testing.T) {
	body, _ := record(t, config.ModeDebug, func(c *gin.Context) {
		Fail(c, ErrDatabase.WithOrigin(fmt.Errorf("table missing")))
	})
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	require.Contains(t, data["origin"], "table missing")
}

func TestWithTipsKeepsCode(t *testing.T) {
	tipped := ErrMemberTaken.WithTips("someone@example.com")
	require.Equal(t, ErrMemberTaken.Code, tipped.Code)
	require.Contains(t, tipped.Message, "someone@example.com")
	// The base error is untouched.
	require.NotContains(t, ErrMemberTaken.Message, "someone@example.com")
}

func TestErrorIsMatchesByCode(t *testing.T) {
	wrapped := ErrTeamNotFound.WithOrigin(fmt.Errorf("lookup failed"))
	require.ErrorIs(t, wrapped, ErrTeamNotFound)
	require.NotErrorIs(t, wrapped, ErrResultsNotOut)
}
