// Package store is the injected persistence layer. Ownership chains are
// resolved with explicit joins (Task→Column→Board→owner) so the policy
// evaluator works on plain facts instead of walking object graphs.
package store

import (
	"errors"

	"github.com/vinicius-yudi/taskboard/internal/apperrors"
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// DB exposes the underlying handle for the ordering engine, which issues
// its reindex statements against the same transaction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn against a transactional view of the store; fn
// returning an error rolls everything back.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("duplicate value for a unique field")
	}
	return err
}

// Users

func (s *Store) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Boards

func (s *Store) CreateBoard(board *models.Board) error {
	return translate(s.db.Create(board).Error)
}

func (s *Store) SaveBoard(board *models.Board) error {
	return translate(s.db.Save(board).Error)
}

func (s *Store) DeleteBoard(board *models.Board) error {
	return s.db.Unscoped().Delete(board).Error
}

func (s *Store) BoardByID(id uint) (*models.Board, error) {
	var board models.Board

	if err := s.db.First(&board, id).Error; err != nil {
		return nil, err
	}

	return &board, nil
}

func (s *Store) BoardsByOwner(ownerID uint) ([]models.Board, error) {
	var boards []models.Board

	err := s.db.Where("owner_id = ?", ownerID).Find(&boards).Error

	return boards, err
}

// MainBoard returns the admin's shared board. There is at most one row
// with the flag set.
func (s *Store) MainBoard() (*models.Board, error) {
	var board models.Board

	if err := s.db.Where("is_main_board = ?", true).First(&board).Error; err != nil {
		return nil, err
	}

	return &board, nil
}

func (s *Store) SlugTaken(slug string) (bool, error) {
	var n int64

	err := s.db.Model(&models.Board{}).Where("slug = ?", slug).Count(&n).Error

	return n > 0, err
}

// Columns

func (s *Store) CreateColumn(column *models.Column) error {
	return s.db.Create(column).Error
}

func (s *Store) SaveColumn(column *models.Column) error {
	return s.db.Save(column).Error
}

func (s *Store) DeleteColumnByID(id uint) error {
	return s.db.Unscoped().Delete(&models.Column{}, id).Error
}

func (s *Store) ColumnByID(id uint) (*models.Column, error) {
	var column models.Column

	if err := s.db.First(&column, id).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

func (s *Store) ColumnsByBoard(boardID uint) ([]models.Column, error) {
	var columns []models.Column

	err := s.db.Where("board_id = ?", boardID).Order("position ASC").Find(&columns).Error

	return columns, err
}

func (s *Store) DeleteColumnsByBoard(boardID uint) error {
	return s.db.Unscoped().Where("board_id = ?", boardID).Delete(&models.Column{}).Error
}

// Tasks

func (s *Store) CreateTask(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *Store) SaveTask(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *Store) DeleteTaskByID(id uint) error {
	return s.db.Unscoped().Delete(&models.Task{}, id).Error
}

func (s *Store) TaskByID(id uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *Store) TasksByOwner(ownerID uint) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.Where("owner_id = ?", ownerID).
		Order("column_id ASC, position ASC").
		Find(&tasks).Error

	return tasks, err
}

// TasksByBoard loads every task of the board in one join, ordered the way
// the board renders them.
func (s *Store) TasksByBoard(boardID uint) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Where("columns.board_id = ?", boardID).
		Order("tasks.column_id ASC, tasks.position ASC").
		Find(&tasks).Error

	return tasks, err
}

func (s *Store) DeleteTasksByColumn(columnID uint) error {
	return s.db.Unscoped().Where("column_id = ?", columnID).Delete(&models.Task{}).Error
}

func (s *Store) DeleteTasksByBoard(boardID uint) error {
	return s.db.Unscoped().
		Where("column_id IN (?)", s.db.Model(&models.Column{}).Select("id").Where("board_id = ?", boardID)).
		Delete(&models.Task{}).Error
}

// Ownership resolution

// ColumnRef is a column plus the ownership facts of its parent board.
type ColumnRef struct {
	ColumnID     uint
	Position     int
	BoardID      uint
	BoardOwnerID uint
	BoardIsMain  bool
}

func (s *Store) ResolveColumn(columnID uint) (*ColumnRef, error) {
	var ref ColumnRef

	err := s.db.Model(&models.Column{}).
		Select("columns.id AS column_id, columns.position AS position, boards.id AS board_id, boards.owner_id AS board_owner_id, boards.is_main_board AS board_is_main").
		Joins("JOIN boards ON boards.id = columns.board_id").
		Where("columns.id = ?", columnID).
		Take(&ref).Error

	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// TaskRef is a task plus the full resolved ownership chain
// Task→Column→Board→owner.
type TaskRef struct {
	TaskID       uint
	TaskOwnerID  uint
	Position     int
	ColumnID     uint
	BoardID      uint
	BoardOwnerID uint
	BoardIsMain  bool
}

func (s *Store) ResolveTask(taskID uint) (*TaskRef, error) {
	var ref TaskRef

	err := s.db.Model(&models.Task{}).
		Select("tasks.id AS task_id, tasks.owner_id AS task_owner_id, tasks.position AS position, tasks.column_id AS column_id, boards.id AS board_id, boards.owner_id AS board_owner_id, boards.is_main_board AS board_is_main").
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Joins("JOIN boards ON boards.id = columns.board_id").
		Where("tasks.id = ?", taskID).
		Take(&ref).Error

	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// Board shapes the resolved facts for the policy evaluator.
func (ref *ColumnRef) Board() policy.Board {
	return policy.Board{ID: ref.BoardID, OwnerID: ref.BoardOwnerID, IsMain: ref.BoardIsMain}
}

func (ref *TaskRef) Board() policy.Board {
	return policy.Board{ID: ref.BoardID, OwnerID: ref.BoardOwnerID, IsMain: ref.BoardIsMain}
}
