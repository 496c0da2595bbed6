package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ajcc-portal/config"
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/jwt"
	"ajcc-portal/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Setup points the shared handles at test doubles: a throwaway in-memory
// database and a minimal debug config. Call it first in every handler test.
func Setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		Mode: config.ModeDebug,
		JWT:  config.JWT{Secret: "test-secret", Expire: 3600},
	})
	database.InitTest()
}

// AdminClaims builds the payload the auth middleware would have set for a
// logged-in admin.
func AdminClaims(adminID uint, username string) *jwt.Claims {
	_, claims := jwt.CreateToken(jwt.Payload{AdminID: adminID, Username: username})
	return claims
}

// DoRequest invokes a handler with a JSON body and decodes the envelope.
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	resp, _ := DoRequestRaw(t, handlerFunc, request, nil, nil)
	return resp
}

// DoRequestAs is DoRequest with an authenticated admin payload preset.
func DoRequestAs(t *testing.T, claims *jwt.Claims, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	resp, _ := DoRequestRaw(t, handlerFunc, request, claims, nil)
	return resp
}

// DoGet invokes a handler with route params and no body.
func DoGet(t *testing.T, handlerFunc gin.HandlerFunc, params map[string]string) (response.ResponseBody, int) {
	return DoRequestRaw(t, handlerFunc, nil, nil, params)
}

// DoRequestRaw is the general form: optional JSON body, optional admin
// payload, optional route params. Returns the decoded envelope and status.
func DoRequestRaw(t *testing.T, handlerFunc gin.HandlerFunc, request any, claims *jwt.Claims, params map[string]string) (response.ResponseBody, int) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body *bytes.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	} else {
		body = bytes.NewReader(nil)
	}

	method := http.MethodPost
	if request == nil {
		method = http.MethodGet
	}
	c.Request = httptest.NewRequest(method, "/test", body)
	c.Request.Header.Set("Content-Type", "application/json")

	if claims != nil {
		c.Set("payload", claims)
	}
	for k, v := range params {
		c.Params = append(c.Params, gin.Param{Key: k, Value: v})
	}

	handlerFunc(c)

	var resp response.ResponseBody
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return resp, w.Code
}
