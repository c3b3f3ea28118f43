// Package ordering maintains the dense 1-based position invariant for
// ordered sibling collections: columns within a board and tasks within a
// column. Every mutation here expects to run inside the caller's
// transaction; none of it validates bounds.
package ordering

import (
	"gorm.io/gorm"
)

// Scope identifies one ordered sibling collection: every row of Model whose
// ParentKey column equals ParentID.
type Scope struct {
	Model     interface{}
	ParentKey string
	ParentID  uint
}

func (s Scope) siblings(tx *gorm.DB) *gorm.DB {
	return tx.Model(s.Model).Where(s.ParentKey+" = ?", s.ParentID)
}

// NextPosition returns the position for an item appended to the collection:
// max + 1, or 1 when the collection is empty.
func NextPosition(tx *gorm.DB, s Scope) (int, error) {
	var max int

	err := s.siblings(tx).Select("COALESCE(MAX(position), 0)").Scan(&max).Error

	if err != nil {
		return 0, err
	}

	return max + 1, nil
}

// Count returns the number of items in the collection.
func Count(tx *gorm.DB, s Scope) (int, error) {
	var n int64

	if err := s.siblings(tx).Count(&n).Error; err != nil {
		return 0, err
	}

	return int(n), nil
}

// CloseGap decrements every sibling past the removed position so the
// collection stays dense after a removal.
func CloseGap(tx *gorm.DB, s Scope, removed int) error {
	return s.siblings(tx).
		Where("position > ?", removed).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
}

// OpenSlot increments every sibling at or past the target position, making
// room for an insert.
func OpenSlot(tx *gorm.DB, s Scope, at int) error {
	return s.siblings(tx).
		Where("position >= ?", at).
		UpdateColumn("position", gorm.Expr("position + 1")).Error
}

// MoveWithin relocates the item to newPos inside its own collection,
// shifting only the siblings in between. Equal positions are a no-op.
func MoveWithin(tx *gorm.DB, s Scope, itemID uint, oldPos, newPos int) error {
	if newPos == oldPos {
		return nil
	}

	var err error

	if newPos < oldPos {
		err = s.siblings(tx).
			Where("position >= ? AND position < ?", newPos, oldPos).
			UpdateColumn("position", gorm.Expr("position + 1")).Error
	} else {
		err = s.siblings(tx).
			Where("position > ? AND position <= ?", oldPos, newPos).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	}

	if err != nil {
		return err
	}

	return setPosition(tx, s, itemID, newPos)
}

// MoveAcross removes the item from src and inserts it into dst at newPos:
// the gap left in src is closed, a slot in dst is opened, and the item is
// reassigned to dst's parent.
func MoveAcross(tx *gorm.DB, src, dst Scope, itemID uint, oldPos, newPos int) error {
	if err := CloseGap(tx, src, oldPos); err != nil {
		return err
	}

	if err := OpenSlot(tx, dst, newPos); err != nil {
		return err
	}

	return tx.Model(src.Model).
		Where("id = ?", itemID).
		UpdateColumns(map[string]interface{}{
			dst.ParentKey: dst.ParentID,
			"position":    newPos,
		}).Error
}

func setPosition(tx *gorm.DB, s Scope, itemID uint, pos int) error {
	return tx.Model(s.Model).
		Where("id = ?", itemID).
		UpdateColumn("position", pos).Error
}
