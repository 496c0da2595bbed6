package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Name     string `excel:"Student Name"`
	Score    int    `excel:"Score"`
	Position *int   `excel:"Position"`
	hidden   string `excel:"Should Not Appear"`
	Ignored  string `excel:"-"`
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	first := 1
	rows := []exportRow{
		{Name: "Asha", Score: 95, Position: &first, hidden: "x", Ignored: "x"},
		{Name: "Nimal", Score: 60},
	}
	require.NoError(t, ExportToExcel(f, "Results", rows))

	got, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"Student Name", "Score", "Position"}, got[0])
	require.Equal(t, []string{"Asha", "95", "1"}, got[1])
	// Nil pointers render as blank; trailing empty cells may be trimmed.
	require.Equal(t, "Nimal", got[2][0])
	require.Equal(t, "60", got[2][1])
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.Error(t, ExportToExcel(f, "Results", "not a slice"))
	require.Error(t, ExportToExcel(f, "Results", []int{1, 2}))
}

func TestExportToExcelEmptySlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, ExportToExcel(f, "Results", []exportRow{}))
}
