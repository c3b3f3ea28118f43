// Package policy is the single place access decisions are made. Every
// function is a pure predicate over the actor and ownership facts the
// store already resolved; nothing here touches the database.
package policy

import "github.com/vinicius-yudi/taskboard/internal/types"

// Actor is the authenticated principal a decision is evaluated for.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == types.RoleAdmin
}

// Board carries the resolved ownership facts of a board.
type Board struct {
	ID      uint
	OwnerID uint
	IsMain  bool
}

// CanViewBoard: owners see their boards; the main board is readable by
// every authenticated user.
func CanViewBoard(a Actor, b Board) bool {
	return b.IsMain || b.OwnerID == a.ID
}

// CanEditBoard gates board update and delete. Main-board edits are
// admin-gated rather than owner-gated; everything else is owner-only.
func CanEditBoard(a Actor, b Board) bool {
	if b.IsMain {
		return a.IsAdmin()
	}

	return b.OwnerID == a.ID
}

// CanManageColumns: only the board owner may create, rename or delete
// columns.
func CanManageColumns(a Actor, b Board) bool {
	return b.OwnerID == a.ID
}

// CanManageTasks gates task create/update/delete/move inside a board. The
// gate is board ownership, not task authorship: the owner may touch any
// task on their board.
func CanManageTasks(a Actor, b Board) bool {
	return b.OwnerID == a.ID
}

// CanToggleTask gates the done flip, the one task mutation scoped to the
// task creator instead of the board owner.
func CanToggleTask(a Actor, taskOwnerID uint) bool {
	return taskOwnerID == a.ID
}

// TaskVisible reports whether a task created by taskOwnerID is visible to
// the actor on the given board: every task on the main board, otherwise
// only the actor's own.
func TaskVisible(a Actor, b Board, taskOwnerID uint) bool {
	if b.IsMain {
		return true
	}

	return taskOwnerID == a.ID
}

// CanMoveTask covers both same-board and cross-board moves: within one
// board it is the usual board-ownership gate, across boards the actor must
// own both ends.
func CanMoveTask(a Actor, src, dst Board) bool {
	if src.ID == dst.ID {
		return CanManageTasks(a, src)
	}

	return src.OwnerID == a.ID && dst.OwnerID == a.ID
}
