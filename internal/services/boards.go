package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/vinicius-yudi/taskboard/internal/apperrors"
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"github.com/vinicius-yudi/taskboard/internal/store"
	"github.com/vinicius-yudi/taskboard/internal/utils"
	"gorm.io/gorm"
)

type BoardService struct {
	store *store.Store
}

func NewBoardService(st *store.Store) *BoardService {
	return &BoardService{store: st}
}

// List returns the boards visible to the actor, lazily provisioning the
// admin's main board or the user's personal board on first access. The
// check-then-create window across concurrent first requests is accepted.
func (s *BoardService) List(actor policy.Actor, email string) ([]models.Board, error) {
	boards, err := s.store.BoardsByOwner(actor.ID)

	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		boards, err = s.ensureMainBoard(actor, email, boards)
	} else {
		boards, err = s.attachSharedAndPersonal(actor, email, boards)
	}

	if err != nil {
		return nil, err
	}

	// Main board first, the rest by title.
	sort.SliceStable(boards, func(i, j int) bool {
		if boards[i].IsMainBoard != boards[j].IsMainBoard {
			return boards[i].IsMainBoard
		}
		return boards[i].Title < boards[j].Title
	})

	return boards, nil
}

func (s *BoardService) ensureMainBoard(actor policy.Actor, email string, boards []models.Board) ([]models.Board, error) {
	for _, board := range boards {
		if board.IsMainBoard {
			return boards, nil
		}
	}

	slug := fmt.Sprintf("main-%s-%s", utils.SanitizeSlugPart(email), uuid.NewString())
	board, err := s.createWithDefaultColumn(actor.ID, "Main Board (Admin)", slug, true)

	if err != nil {
		return nil, err
	}

	return append(boards, *board), nil
}

func (s *BoardService) attachSharedAndPersonal(actor policy.Actor, email string, boards []models.Board) ([]models.Board, error) {
	mainBoard, err := s.store.MainBoard()

	if err == nil {
		boards = append(boards, *mainBoard)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	for _, board := range boards {
		if board.OwnerID == actor.ID && !board.IsMainBoard {
			return boards, nil
		}
	}

	slug := fmt.Sprintf("personal-%s-%s", utils.SanitizeSlugPart(email), uuid.NewString())
	board, err := s.createWithDefaultColumn(actor.ID, "My Personal Board", slug, false)

	if err != nil {
		return nil, err
	}

	return append(boards, *board), nil
}

// Create makes a regular board owned by the actor, with a slug derived
// from the title and a default column.
func (s *BoardService) Create(actor policy.Actor, title string) (*models.Board, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	slug, err := s.uniqueSlug(utils.Slugify(title))

	if err != nil {
		return nil, err
	}

	return s.createWithDefaultColumn(actor.ID, title, slug, false)
}

func (s *BoardService) uniqueSlug(base string) (string, error) {
	slug := base

	for counter := 1; ; counter++ {
		taken, err := s.store.SlugTaken(slug)

		if err != nil {
			return "", err
		}

		if !taken {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *BoardService) createWithDefaultColumn(ownerID uint, title, slug string, isMain bool) (*models.Board, error) {
	board := &models.Board{
		Title:       title,
		Slug:        slug,
		IsMainBoard: isMain,
		OwnerID:     ownerID,
	}

	err := s.store.Transaction(func(tx *store.Store) error {
		if err := tx.CreateBoard(board); err != nil {
			return err
		}

		return tx.CreateColumn(&models.Column{
			Title:    DefaultColumnTitle,
			Position: 1,
			BoardID:  board.ID,
		})
	})

	if err != nil {
		return nil, err
	}

	return board, nil
}

func (s *BoardService) Update(actor policy.Actor, boardID uint, title string) (*models.Board, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	board, err := s.lookup(boardID)

	if err != nil {
		return nil, err
	}

	if !policy.CanEditBoard(actor, boardFacts(board)) {
		return nil, apperrors.ErrForbidden
	}

	board.Title = title

	if err := s.store.SaveBoard(board); err != nil {
		return nil, err
	}

	return board, nil
}

// Delete removes the board with its columns and tasks in one transaction.
func (s *BoardService) Delete(actor policy.Actor, boardID uint) error {
	board, err := s.lookup(boardID)

	if err != nil {
		return err
	}

	if !policy.CanEditBoard(actor, boardFacts(board)) {
		return apperrors.ErrForbidden
	}

	return s.store.Transaction(func(tx *store.Store) error {
		if err := tx.DeleteTasksByBoard(board.ID); err != nil {
			return err
		}

		if err := tx.DeleteColumnsByBoard(board.ID); err != nil {
			return err
		}

		return tx.DeleteBoard(board)
	})
}

func (s *BoardService) lookup(boardID uint) (*models.Board, error) {
	board, err := s.store.BoardByID(boardID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("board")
	}

	if err != nil {
		return nil, err
	}

	return board, nil
}
