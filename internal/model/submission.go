package model

// Submission is created once per team while submissions are open; it is never
// updated afterwards. Resubmission is rejected, not overwritten.
type Submission struct {
	Model
	TeamDbID   uint   `gorm:"uniqueIndex;not null" json:"teamDbId"`
	TeamEmail  string `gorm:"type:varchar(255);not null" json:"teamEmail"`
	ProjectURL string `gorm:"type:varchar(500);not null" json:"projectUrl"`
	Notes      string `gorm:"type:varchar(1000)" json:"notes,omitempty"`

	Team *Team `gorm:"foreignKey:TeamDbID;references:ID" json:"team,omitempty"`
}
