package evaluation

import (
	"sort"

	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/model"

	"gorm.io/gorm"
)

// rerankCategory recomputes positions for every evaluated team in a category
// from scratch. A full recompute self-heals whatever a previous partial
// update left behind; the row counts are far too small for it to matter.
//
// Ordering: total marks descending, ties broken by earlier team registration
// (CreatedAt, then ID) so reruns over the same data are deterministic.
func rerankCategory(category string) error {
	var teams []model.Team
	err := database.DB.
		Where("category = ?", category).
		Preload("Evaluation").
		Find(&teams).Error
	if err != nil {
		return err
	}

	evaluated := teams[:0]
	for _, t := range teams {
		if t.Evaluation != nil {
			evaluated = append(evaluated, t)
		}
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		a, b := evaluated[i], evaluated[j]
		if a.Evaluation.TotalMarks != b.Evaluation.TotalMarks {
			return a.Evaluation.TotalMarks > b.Evaluation.TotalMarks
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return database.DB.Transaction(func(tx *gorm.DB) error {
		for i, t := range evaluated {
			var position *int
			if i < 3 {
				p := i + 1
				position = &p
			}
			if err := tx.Model(&model.Evaluation{}).
				Where("team_db_id = ?", t.ID).
				Update("position", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
