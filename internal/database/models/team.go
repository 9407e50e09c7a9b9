package models

import "time"

// Team represents a named team. Name is unique across all teams.
type Team struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description *string   `json:"description" gorm:"size:500"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
