package models

import "gorm.io/gorm"

type Task struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Done        bool `gorm:"not null;default:false"`
	// Position is dense and 1-based within the column ("order" on the wire).
	Position int  `gorm:"not null;index"`
	ColumnID uint `gorm:"not null;index"`
	OwnerID  uint `gorm:"not null;index"` // creator

	// Relationships
	Column Column `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Owner  User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
