package model

// TeamMember rows are owned by their team and removed with it. An email may
// appear on at most one member row system-wide.
type TeamMember struct {
	Model
	TeamDbID  uint   `gorm:"index;not null" json:"teamDbId"`
	StudentID string `gorm:"type:varchar(50);not null" json:"studentId"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Batch     string `gorm:"type:varchar(50);not null" json:"batch"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
}
