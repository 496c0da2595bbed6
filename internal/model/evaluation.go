package model

// Per-criterion score ceilings. The five criteria sum to 100, so the total
// doubles as a percentage.
const (
	MaxUIUx            = 25
	MaxCodeQuality     = 25
	MaxFolderStructure = 20
	MaxFunctionality   = 20
	MaxInnovation      = 10
)

// Evaluation is upserted per team by an admin; every change triggers a full
// re-rank of the team's category. Position is nil unless the team is in the
// category's top 3 by total marks.
type Evaluation struct {
	Model
	TeamDbID        uint   `gorm:"uniqueIndex;not null" json:"teamDbId"`
	UIUx            int    `gorm:"not null" json:"uiUx"`
	CodeQuality     int    `gorm:"not null" json:"codeQuality"`
	FolderStructure int    `gorm:"not null" json:"folderStructure"`
	Functionality   int    `gorm:"not null" json:"functionality"`
	Innovation      int    `gorm:"not null" json:"innovation"`
	TotalMarks      int    `gorm:"not null" json:"totalMarks"`
	Percentage      int    `gorm:"not null" json:"percentage"`
	Grade           string `gorm:"type:varchar(10);not null" json:"grade"`
	Position        *int   `json:"position"`
}
