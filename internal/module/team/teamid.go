package team

import (
	"fmt"
	"math/rand"

	"ajcc-portal/internal/model"
)

// generateTeamID builds a public team id candidate: AJCC-WD-#### for the
// full stack track, AJCC-DS-#### for web designing, with a random 4-digit
// number. Callers must collision-check against existing rows and retry.
func generateTeamID(category string) string {
	prefix := "AJCC-DS"
	if category == model.CategoryFullStack {
		prefix = "AJCC-WD"
	}
	num := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%s-%d", prefix, num)
}
