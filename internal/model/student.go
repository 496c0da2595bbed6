package model

// Student is a roster row imported from a spreadsheet. Students are not
// competitors by themselves; teams reference them informally by studentId.
type Student struct {
	Model
	StudentID string `gorm:"type:varchar(50);not null" json:"studentId" excel:"Student ID"`
	Name      string `gorm:"type:varchar(100);not null" json:"name" excel:"Student Name"`
	Batch     string `gorm:"type:varchar(50);not null" json:"batch" excel:"Batch"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" excel:"Email"`
}
