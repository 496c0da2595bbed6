package model

// The two competition tracks. The category is fixed at registration, decides
// the public team id prefix, and partitions the ranking.
const (
	CategoryFullStack = "Full Stack Web Development"
	CategoryWebDesign = "Web Designing"
)

type Team struct {
	Model
	TeamName string `gorm:"type:varchar(100);uniqueIndex;not null" json:"teamName"`
	// TeamID is the public-facing id, format AJCC-<WD|DS>-####.
	TeamID   string `gorm:"type:varchar(20);uniqueIndex;not null" json:"teamId"`
	Category string `gorm:"type:varchar(50);not null" json:"category"`

	Members    []TeamMember `gorm:"foreignKey:TeamDbID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Submission *Submission  `gorm:"foreignKey:TeamDbID" json:"submission,omitempty"`
	Evaluation *Evaluation  `gorm:"foreignKey:TeamDbID" json:"evaluation,omitempty"`
}
