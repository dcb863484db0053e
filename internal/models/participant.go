package models

import "gorm.io/gorm"

type Participant struct {
	gorm.Model

	ActivityID uint   `gorm:"not null;uniqueIndex:idx_activity_email"`
	Email      string `gorm:"not null;uniqueIndex:idx_activity_email"`

	// Relationships
	Activity Activity `gorm:"foreignKey:ActivityID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
