package services

import (
	"errors"
	"strings"

	"github.com/vinicius-yudi/taskboard/internal/apperrors"
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/ordering"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"github.com/vinicius-yudi/taskboard/internal/store"
	"gorm.io/gorm"
)

type ColumnService struct {
	store *store.Store
}

func NewColumnService(st *store.Store) *ColumnService {
	return &ColumnService{store: st}
}

// ColumnWithTasks pairs a column with the tasks the actor is allowed to
// see on it.
type ColumnWithTasks struct {
	Column models.Column
	Tasks  []models.Task
}

// ListWithTasks returns the board's columns in position order, each with
// the visibility-filtered tasks. Tasks come from a single join query.
func (s *ColumnService) ListWithTasks(actor policy.Actor, boardID uint) ([]ColumnWithTasks, error) {
	board, err := s.store.BoardByID(boardID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("board")
	}

	if err != nil {
		return nil, err
	}

	facts := boardFacts(board)

	if !policy.CanViewBoard(actor, facts) {
		return nil, apperrors.ErrForbidden
	}

	columns, err := s.store.ColumnsByBoard(boardID)

	if err != nil {
		return nil, err
	}

	tasks, err := s.store.TasksByBoard(boardID)

	if err != nil {
		return nil, err
	}

	visible := make(map[uint][]models.Task)

	for _, task := range tasks {
		if policy.TaskVisible(actor, facts, task.OwnerID) {
			visible[task.ColumnID] = append(visible[task.ColumnID], task)
		}
	}

	result := make([]ColumnWithTasks, 0, len(columns))

	for _, column := range columns {
		result = append(result, ColumnWithTasks{
			Column: column,
			Tasks:  visible[column.ID],
		})
	}

	return result, nil
}

// Create appends a column to the board.
func (s *ColumnService) Create(actor policy.Actor, boardID uint, title string) (*models.Column, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	if boardID == 0 {
		return nil, apperrors.Validation("boardId is required")
	}

	board, err := s.store.BoardByID(boardID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("board")
	}

	if err != nil {
		return nil, err
	}

	if !policy.CanManageColumns(actor, boardFacts(board)) {
		return nil, apperrors.ErrForbidden
	}

	var column *models.Column

	err = s.store.Transaction(func(tx *store.Store) error {
		position, err := ordering.NextPosition(tx.DB(), columnScope(boardID))

		if err != nil {
			return err
		}

		column = &models.Column{
			Title:    title,
			Position: position,
			BoardID:  boardID,
		}

		return tx.CreateColumn(column)
	})

	if err != nil {
		return nil, err
	}

	return column, nil
}

func (s *ColumnService) UpdateTitle(actor policy.Actor, columnID uint, title string) (*models.Column, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	ref, err := s.resolve(columnID)

	if err != nil {
		return nil, err
	}

	if !policy.CanManageColumns(actor, ref.Board()) {
		return nil, apperrors.ErrForbidden
	}

	column, err := s.store.ColumnByID(columnID)

	if err != nil {
		return nil, err
	}

	column.Title = title

	if err := s.store.SaveColumn(column); err != nil {
		return nil, err
	}

	return column, nil
}

// Delete removes the column and its tasks, then closes the position gap on
// the board's remaining columns. One transaction.
func (s *ColumnService) Delete(actor policy.Actor, columnID uint) error {
	ref, err := s.resolve(columnID)

	if err != nil {
		return err
	}

	if !policy.CanManageColumns(actor, ref.Board()) {
		return apperrors.ErrForbidden
	}

	return s.store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteTasksByColumn(columnID); err != nil {
			return err
		}

		if err := tx.DeleteColumnByID(columnID); err != nil {
			return err
		}

		return ordering.CloseGap(tx.DB(), columnScope(ref.BoardID), ref.Position)
	})
}

func (s *ColumnService) resolve(columnID uint) (*store.ColumnRef, error) {
	ref, err := s.store.ResolveColumn(columnID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("column")
	}

	if err != nil {
		return nil, err
	}

	return ref, nil
}
