package models

import "gorm.io/gorm"

type Board struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	IsMainBoard bool   `gorm:"not null;default:false"` // fixed at creation, never toggled
	OwnerID     uint   `gorm:"not null;index"`

	// Relationships
	Owner   User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Columns []Column `gorm:"foreignKey:BoardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
