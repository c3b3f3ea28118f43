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

type TaskService struct {
	store   *store.Store
	columns *ColumnService
}

func NewTaskService(st *store.Store, columns *ColumnService) *TaskService {
	return &TaskService{store: st, columns: columns}
}

// List returns the actor's own tasks across all boards.
func (s *TaskService) List(actor policy.Actor) ([]models.Task, error) {
	return s.store.TasksByOwner(actor.ID)
}

func (s *TaskService) Get(actor policy.Actor, taskID uint) (*models.Task, error) {
	ref, err := s.resolve(taskID)

	if err != nil {
		return nil, err
	}

	if !policy.TaskVisible(actor, ref.Board(), ref.TaskOwnerID) && !policy.CanManageTasks(actor, ref.Board()) {
		return nil, apperrors.ErrForbidden
	}

	return s.store.TaskByID(taskID)
}

// Create appends a task to the column; only the board owner may add tasks.
func (s *TaskService) Create(actor policy.Actor, columnID uint, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	if columnID == 0 {
		return nil, apperrors.Validation("columnId is required")
	}

	ref, err := s.store.ResolveColumn(columnID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("column")
	}

	if err != nil {
		return nil, err
	}

	if !policy.CanManageTasks(actor, ref.Board()) {
		return nil, apperrors.ErrForbidden
	}

	var task *models.Task

	err = s.store.Transaction(func(tx *store.Store) error {
		position, err := ordering.NextPosition(tx.DB(), taskScope(columnID))

		if err != nil {
			return err
		}

		task = &models.Task{
			Title:       title,
			Description: description,
			Position:    position,
			ColumnID:    columnID,
			OwnerID:     actor.ID,
		}

		return tx.CreateTask(task)
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Update(actor policy.Actor, taskID uint, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	ref, err := s.resolve(taskID)

	if err != nil {
		return nil, err
	}

	if !policy.CanManageTasks(actor, ref.Board()) {
		return nil, apperrors.ErrForbidden
	}

	task, err := s.store.TaskByID(taskID)

	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description

	if err := s.store.SaveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// SetDone flips the done flag. Unlike the other task mutations this is
// gated on task authorship, not board ownership.
func (s *TaskService) SetDone(actor policy.Actor, taskID uint, done bool) (*models.Task, error) {
	ref, err := s.resolve(taskID)

	if err != nil {
		return nil, err
	}

	if !policy.CanToggleTask(actor, ref.TaskOwnerID) {
		return nil, apperrors.ErrForbidden
	}

	task, err := s.store.TaskByID(taskID)

	if err != nil {
		return nil, err
	}

	task.Done = done

	if err := s.store.SaveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the task and closes the gap in its column. One
// transaction.
func (s *TaskService) Delete(actor policy.Actor, taskID uint) error {
	ref, err := s.resolve(taskID)

	if err != nil {
		return err
	}

	if !policy.CanManageTasks(actor, ref.Board()) {
		return apperrors.ErrForbidden
	}

	return s.store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteTaskByID(taskID); err != nil {
			return err
		}

		return ordering.CloseGap(tx.DB(), taskScope(ref.ColumnID), ref.Position)
	})
}

// Move relocates the task to newIndex (the 0-based slot the drag UI
// computed) in the destination column, reindexing both columns in one
// transaction, and returns the destination board's refreshed columns so
// the caller can resynchronize without a second round trip.
func (s *TaskService) Move(actor policy.Actor, taskID, newColumnID uint, newIndex int) ([]ColumnWithTasks, error) {
	ref, err := s.resolve(taskID)

	if err != nil {
		return nil, err
	}

	dst, err := s.store.ResolveColumn(newColumnID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("column")
	}

	if err != nil {
		return nil, err
	}

	if !policy.CanMoveTask(actor, ref.Board(), dst.Board()) {
		return nil, apperrors.ErrForbidden
	}

	if newIndex < 0 {
		return nil, apperrors.Validation("newOrder must not be negative")
	}

	sameColumn := ref.ColumnID == dst.ColumnID

	length, err := ordering.Count(s.store.DB(), taskScope(dst.ColumnID))

	if err != nil {
		return nil, err
	}

	// Valid slots are 0..len-1 when reordering in place (the task already
	// occupies one) and 0..len when inserting into another column.
	limit := length
	if sameColumn {
		limit = length - 1
	}

	if newIndex > limit {
		return nil, apperrors.Validation("newOrder is out of range")
	}

	newPos := newIndex + 1

	if sameColumn && newPos == ref.Position {
		return s.columns.ListWithTasks(actor, dst.BoardID)
	}

	err = s.store.Transaction(func(tx *store.Store) error {
		if sameColumn {
			return ordering.MoveWithin(tx.DB(), taskScope(ref.ColumnID), taskID, ref.Position, newPos)
		}

		return ordering.MoveAcross(tx.DB(), taskScope(ref.ColumnID), taskScope(dst.ColumnID), taskID, ref.Position, newPos)
	})

	if err != nil {
		return nil, err
	}

	return s.columns.ListWithTasks(actor, dst.BoardID)
}

func (s *TaskService) resolve(taskID uint) (*store.TaskRef, error) {
	ref, err := s.store.ResolveTask(taskID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("task")
	}

	if err != nil {
		return nil, err
	}

	return ref, nil
}
