package models

import "time"

// ContactMessage is a message sent through the tribal contact form.
// It is never modified after it is stored.
type ContactMessage struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Message   string    `json:"message" gorm:"type:text" bson:"message"`
	Region    string    `json:"region,omitempty" bson:"region,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
