package evaluation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		percentage int
		grade      string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "Fail"},
		{45, "Fail"},
		{0, "Fail"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.grade, gradeFor(tc.percentage), "percentage %d", tc.percentage)
	}
}
