package evaluation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ajcc-portal/internal/model"
	"ajcc-portal/test"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportResults(t *testing.T) {
	setup(t)

	graded := seedTeam(t, "Graded", model.CategoryFullStack, time.Now())
	seedTeam(t, "Ungraded", model.CategoryFullStack, time.Now())
	test.NoError(t, test.DoRequest(t, Evaluate, EvaluateReq{TeamDbID: graded.ID, UIUx: 25, CodeQuality: 25}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	ExportResults(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, tools.ExcelContentType, w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "ajcc-results.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	// Header plus the one evaluated team; the ungraded team is left out.
	require.Len(t, rows, 2)
	require.Equal(t, "Graded", rows[1][1])
	require.Equal(t, "50", rows[1][8])
}
