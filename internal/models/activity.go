package models

import "gorm.io/gorm"

type Activity struct {
	gorm.Model

	Name            string `gorm:"uniqueIndex;not null"`
	Description     string
	Schedule        string
	MaxParticipants int `gorm:"not null;default:0"` // 0 means unlimited

	// Relationships
	Participants []Participant `gorm:"foreignKey:ActivityID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
