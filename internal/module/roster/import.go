package roster

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"ajcc-portal/internal/global/archive"
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const maxSampledErrors = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted header spellings, compared case-insensitively after trimming.
var headerAliases = map[string][]string{
	"studentId": {"student id", "student_id", "studentid"},
	"name":      {"student name", "name"},
	"batch":     {"batch"},
	"email":     {"email"},
}

type importResult struct {
	Imported int                 `json:"imported"`
	Skipped  int                 `json:"skipped"`
	Errors   []string            `json:"errors"`
	Archive  *archive.StoredFile `json:"archive,omitempty"`
}

// ImportStudents bulk-loads the roster from an uploaded spreadsheet. Rows
// with blank fields or malformed emails are skipped and sampled into the
// error list; a bad row never aborts the batch. Students are upserted by
// email. When object storage is configured the original file is archived.
func ImportStudents(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("No file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	rows, err := readFirstSheet(data)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips("could not parse spreadsheet"))
		return
	}

	result := processRows(rows)

	arch := archive.New()
	if arch.Enabled() {
		stored, err := arch.Store(c.Request.Context(), fileHeader.Filename, tools.ExcelContentType, data)
		if err != nil {
			// Archiving is best-effort; the import already succeeded.
			log.Warn("roster archive failed", "error", err, "filename", fileHeader.Filename)
		} else {
			result.Archive = stored
		}
	}

	log.Info("roster imported",
		"filename", fileHeader.Filename,
		"imported", result.Imported,
		"skipped", result.Skipped)

	response.Success(c, result)
}

func readFirstSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func processRows(rows [][]string) importResult {
	result := importResult{Errors: []string{}}
	if len(rows) < 2 {
		return result
	}

	columns := mapColumns(rows[0])
	var sampled []string

	for _, row := range rows[1:] {
		studentID := cellAt(row, columns["studentId"])
		name := cellAt(row, columns["name"])
		batch := cellAt(row, columns["batch"])
		email := cellAt(row, columns["email"])

		if studentID == "" || name == "" || batch == "" || email == "" {
			result.Skipped++
			sampled = append(sampled, fmt.Sprintf("Row missing fields: %v", row))
			continue
		}
		if !emailPattern.MatchString(email) {
			result.Skipped++
			sampled = append(sampled, fmt.Sprintf("Invalid email: %s", email))
			continue
		}

		if err := upsertStudent(studentID, name, batch, email); err != nil {
			result.Skipped++
			sampled = append(sampled, fmt.Sprintf("Duplicate or error for: %s", email))
			log.Warn("student upsert failed", "error", err, "email", email)
			continue
		}
		result.Imported++
	}

	if len(sampled) > maxSampledErrors {
		sampled = sampled[:maxSampledErrors]
	}
	if sampled != nil {
		result.Errors = sampled
	}
	return result
}

// mapColumns resolves header aliases to column indexes. Missing fields map
// to -1 so their cells read as blank and the row is skipped with an error.
func mapColumns(header []string) map[string]int {
	columns := map[string]int{
		"studentId": -1,
		"name":      -1,
		"batch":     -1,
		"email":     -1,
	}
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for field, aliases := range headerAliases {
			if columns[field] != -1 {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					columns[field] = i
					break
				}
			}
		}
	}
	return columns
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func upsertStudent(studentID, name, batch, email string) error {
	var student model.Student
	err := database.DB.Where("email = ?", email).First(&student).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		student = model.Student{
			StudentID: studentID,
			Name:      name,
			Batch:     batch,
			Email:     email,
		}
		return database.DB.Create(&student).Error
	case err != nil:
		return err
	}

	return database.DB.Model(&student).Updates(map[string]interface{}{
		"student_id": studentID,
		"name":       name,
		"batch":      batch,
	}).Error
}
