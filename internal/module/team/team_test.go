package team

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/response"
	"ajcc-portal/internal/model"
	"ajcc-portal/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleTeam{}).Init()
}

func members(n int) []MemberReq {
	out := make([]MemberReq, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, MemberReq{
			StudentID: fmt.Sprintf("S-%03d", i),
			Name:      fmt.Sprintf("Member %d", i),
			Batch:     "2026",
			Email:     fmt.Sprintf("member%d@example.com", i),
		})
	}
	return out
}

func TestGenerateTeamIDPrefix(t *testing.T) {
	wd := regexp.MustCompile(`^AJCC-WD-\d{4}$`)
	ds := regexp.MustCompile(`^AJCC-DS-\d{4}$`)

	for i := 0; i < 50; i++ {
		require.Regexp(t, wd, generateTeamID(model.CategoryFullStack))
		require.Regexp(t, ds, generateTeamID(model.CategoryWebDesign))
	}
}

func TestRegisterTeamSizeBounds(t *testing.T) {
	setup(t)

	for _, n := range []int{1, 5} {
		resp := test.DoRequest(t, Register, RegisterReq{
			TeamName: fmt.Sprintf("Size %d", n),
			Category: model.CategoryFullStack,
			Members:  members(n),
		})
		test.ErrorEqual(t, response.ErrTeamSize, resp)
	}

	var count int64
	require.NoError(t, database.DB.Model(&model.Team{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRegisterCreatesTeamWithMembers(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Register, RegisterReq{
		TeamName: "Alpha",
		Category: model.CategoryFullStack,
		Members:  members(3),
	})
	test.NoError(t, resp)

	var team model.Team
	require.NoError(t, database.DB.Preload("Members").Where("team_name = ?", "Alpha").First(&team).Error)
	require.Regexp(t, `^AJCC-WD-\d{4}$`, team.TeamID)
	require.Equal(t, model.CategoryFullStack, team.Category)
	require.Len(t, team.Members, 3)
}

func TestRegisterWebDesignPrefix(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Register, RegisterReq{
		TeamName: "Pixel",
		Category: model.CategoryWebDesign,
		Members:  members(2),
	})
	test.NoError(t, resp)

	var team model.Team
	require.NoError(t, database.DB.Where("team_name = ?", "Pixel").First(&team).Error)
	require.Regexp(t, `^AJCC-DS-\d{4}$`, team.TeamID)
}

func TestRegisterDuplicateTeamName(t *testing.T) {
	setup(t)

	first := test.DoRequest(t, Register, RegisterReq{
		TeamName: "Alpha",
		Category: model.CategoryFullStack,
		Members:  members(2),
	})
	test.NoError(t, first)

	again := RegisterReq{
		TeamName: "Alpha",
		Category: model.CategoryFullStack,
		Members: []MemberReq{
			{StudentID: "X1", Name: "Other A", Batch: "2026", Email: "othera@example.com"},
			{StudentID: "X2", Name: "Other B", Batch: "2026", Email: "otherb@example.com"},
		},
	}
	resp := test.DoRequest(t, Register, again)
	test.ErrorEqual(t, response.ErrTeamExists, resp)
}

func TestRegisterDuplicateEmailWithinRequest(t *testing.T) {
	setup(t)

	dup := members(2)
	dup[1].Email = dup[0].Email

	resp := test.DoRequest(t, Register, RegisterReq{
		TeamName: "Doubles",
		Category: model.CategoryFullStack,
		Members:  dup,
	})
	test.ErrorEqual(t, response.ErrDuplicateEmail, resp)
}

func TestRegisterMemberAlreadyOnAnotherTeam(t *testing.T) {
	setup(t)

	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		TeamName: "First",
		Category: model.CategoryFullStack,
		Members:  members(2),
	}))

	poached := []MemberReq{
		{StudentID: "Y1", Name: "New One", Batch: "2026", Email: "fresh@example.com"},
		{StudentID: "Y2", Name: "Poached", Batch: "2026", Email: "member0@example.com"},
	}
	resp := test.DoRequest(t, Register, RegisterReq{
		TeamName: "Second",
		Category: model.CategoryFullStack,
		Members:  poached,
	})
	test.ErrorEqual(t, response.ErrMemberTaken, resp)

	// The global invariant holds: the conflicting email exists exactly once.
	var count int64
	require.NoError(t, database.DB.Model(&model.TeamMember{}).
		Where("email = ?", "member0@example.com").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestListTeamsNewestFirst(t *testing.T) {
	setup(t)

	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		TeamName: "Older",
		Category: model.CategoryFullStack,
		Members:  members(2),
	}))
	test.NoError(t, test.DoRequest(t, Register, RegisterReq{
		TeamName: "Newer",
		Category: model.CategoryWebDesign,
		Members: []MemberReq{
			{StudentID: "N1", Name: "N One", Batch: "2026", Email: "none@example.com"},
			{StudentID: "N2", Name: "N Two", Batch: "2026", Email: "ntwo@example.com"},
		},
	}))

	// Force distinct creation times; sqlite timestamps otherwise collide.
	require.NoError(t, database.DB.Model(&model.Team{}).
		Where("team_name = ?", "Newer").
		Update("created_at", time.Now().Add(time.Minute)).Error)

	resp := test.DoRequest(t, ListTeams, nil)
	test.NoError(t, resp)

	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Newer", first["teamName"])
	require.Len(t, first["members"], 2)
}

func TestRegisteredTeamIDsUnique(t *testing.T) {
	setup(t)

	for i := 0; i < 10; i++ {
		req := RegisterReq{
			TeamName: fmt.Sprintf("Team %d", i),
			Category: model.CategoryFullStack,
			Members: []MemberReq{
				{StudentID: "A", Name: "A", Batch: "2026", Email: fmt.Sprintf("a%d@example.com", i)},
				{StudentID: "B", Name: "B", Batch: "2026", Email: fmt.Sprintf("b%d@example.com", i)},
			},
		}
		test.NoError(t, test.DoRequest(t, Register, req))
	}

	var teams []model.Team
	require.NoError(t, database.DB.Find(&teams).Error)
	seen := make(map[string]bool)
	for _, team := range teams {
		require.False(t, seen[team.TeamID], "duplicate team id %s", team.TeamID)
		seen[team.TeamID] = true
	}
}
