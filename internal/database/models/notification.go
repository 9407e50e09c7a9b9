package models

import "time"

// Notification is a message addressed to a single recipient, identified by service number.
// IncidentNumber is omitted from JSON when unset, while the actor fields are always
// rendered and come out as null when unset.
type Notification struct {
	ID                     uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipientServiceNumber string    `json:"recipientServiceNumber" gorm:"size:50;not null;index"`
	Message                string    `json:"message" gorm:"type:text;not null"`
	IncidentNumber         *string   `json:"incidentNumber,omitempty" gorm:"size:50"`
	ActorName              *string   `json:"actorName" gorm:"size:100"`
	ActorServiceNumber     *string   `json:"actorServiceNumber" gorm:"size:50"`
	Read                   bool      `json:"read" gorm:"not null;default:false"`
	CreatedOn              time.Time `json:"createdOn" gorm:"autoCreateTime;not null;index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
