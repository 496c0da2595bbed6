package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleRoster{}).Init()
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+1), &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// doImport uploads workbook bytes as the "file" form field.
func doImport(t *testing.T, workbook []byte) response.ResponseBody {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/test", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	ImportStudents(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestImportStudents(t *testing.T) {
	setup(t)

	workbook := buildWorkbook(t, [][]interface{}{
		{"Student ID", "Student Name", "Batch", "Email"},
		{"S001", "Asha Perera", "2026", "asha@example.com"},
		{"S002", "Nimal Silva", "2026", "nimal@example.com"},
	})
	resp := doImport(t, workbook)
	test.NoError(t, resp)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), data["imported"])
	require.Equal(t, float64(0), data["skipped"])

	var students []model.Student
	require.NoError(t, database.DB.Order("student_id").Find(&students).Error)
	require.Len(t, students, 2)
	require.Equal(t, "Asha Perera", students[0].Name)
}

func TestImportSkipsBadRows(t *testing.T) {
	setup(t)

	workbook := buildWorkbook(t, [][]interface{}{
		{"student_id", "name", "batch", "email"},
		{"S001", "Good Row", "2026", "good@example.com"},
		{"S002", "", "2026", "blank-name@example.com"},
		{"S003", "Bad Email", "2026", "not-an-email"},
	})
	resp := doImport(t, workbook)
	test.NoError(t, resp)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(1), data["imported"])
	require.Equal(t, float64(2), data["skipped"])
	require.Len(t, data["errors"], 2)

	var count int64
	require.NoError(t, database.DB.Model(&model.Student{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestImportUpsertsByEmail(t *testing.T) {
	setup(t)

	first := buildWorkbook(t, [][]interface{}{
		{"Student ID", "Name", "Batch", "Email"},
		{"S001", "Old Name", "2025", "same@example.com"},
	})
	test.NoError(t, doImport(t, first))

	second := buildWorkbook(t, [][]interface{}{
		{"Student ID", "Name", "Batch", "Email"},
		{"S001-R", "New Name", "2026", "same@example.com"},
	})
	test.NoError(t, doImport(t, second))

	var students []model.Student
	require.NoError(t, database.DB.Find(&students).Error)
	require.Len(t, students, 1)
	require.Equal(t, "S001-R", students[0].StudentID)
	require.Equal(t, "New Name", students[0].Name)
	require.Equal(t, "2026", students[0].Batch)
}

func TestImportWithoutFile(t *testing.T) {
	setup(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/test", nil)

	ImportStudents(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestMapColumnsAliases(t *testing.T) {
	columns := mapColumns([]string{" STUDENTID ", "Student Name", "BATCH", "Email"})
	require.Equal(t, 0, columns["studentId"])
	require.Equal(t, 1, columns["name"])
	require.Equal(t, 2, columns["batch"])
	require.Equal(t, 3, columns["email"])

	missing := mapColumns([]string{"roll number", "full name"})
	require.Equal(t, -1, missing["studentId"])
	require.Equal(t, -1, missing["email"])
}

func TestProcessRowsSamplesErrors(t *testing.T) {
	setup(t)

	rows := [][]string{{"student id", "name", "batch", "email"}}
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{fmt.Sprintf("S%02d", i), "", "2026", "x@example.com"})
	}

	result := processRows(rows)
	require.Equal(t, 0, result.Imported)
	require.Equal(t, 15, result.Skipped)
	require.Len(t, result.Errors, maxSampledErrors)
}
