package models

import "gorm.io/gorm"

type Column struct {
	gorm.Model

	Title string `gorm:"not null"`
	// Position is dense and 1-based within the board ("order" on the wire;
	// the column is named position to dodge the reserved word).
	Position int  `gorm:"not null;index"`
	BoardID  uint `gorm:"not null;index"`

	// Relationships
	Board Board  `gorm:"foreignKey:BoardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
