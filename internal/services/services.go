// Package services is the board/column/task lifecycle layer: it resolves
// ownership facts through the store, consults the policy evaluator, and
// drives the ordering engine inside transactions.
package services

import (
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/ordering"
	"github.com/vinicius-yudi/taskboard/internal/policy"
)

const DefaultColumnTitle = "To Do"

func columnScope(boardID uint) ordering.Scope {
	return ordering.Scope{Model: &models.Column{}, ParentKey: "board_id", ParentID: boardID}
}

func taskScope(columnID uint) ordering.Scope {
	return ordering.Scope{Model: &models.Task{}, ParentKey: "column_id", ParentID: columnID}
}

func boardFacts(board *models.Board) policy.Board {
	return policy.Board{ID: board.ID, OwnerID: board.OwnerID, IsMain: board.IsMainBoard}
}
