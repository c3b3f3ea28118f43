package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinicius-yudi/taskboard/internal/apperrors"
	"github.com/vinicius-yudi/taskboard/internal/models"
)

func TestListProvisionsMainBoardForAdmin(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	admin, actor := createAdmin(t, st)

	boards, err := svc.List(actor, admin.Email)
	require.NoError(t, err)
	require.Len(t, boards, 1)

	board := boards[0]
	assert.True(t, board.IsMainBoard)
	assert.Equal(t, admin.ID, board.OwnerID)
	assert.Contains(t, board.Slug, "main-admin-example-com")

	columns, err := st.ColumnsByBoard(board.ID)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, DefaultColumnTitle, columns[0].Title)
	assert.Equal(t, 1, columns[0].Position)

	// A second read must not create another one.
	boards, err = svc.List(actor, admin.Email)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestListProvisionsPersonalBoardForDev(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	admin, _ := createAdmin(t, st)
	createBoard(t, st, admin.ID, "Main Board (Admin)", "main-board", true)

	dev, actor := createDev(t, st, "dev@example.com")

	boards, err := svc.List(actor, dev.Email)
	require.NoError(t, err)
	require.Len(t, boards, 2)

	// Main board sorts first, the personal board follows.
	assert.True(t, boards[0].IsMainBoard)
	assert.Equal(t, admin.ID, boards[0].OwnerID)

	personal := boards[1]
	assert.False(t, personal.IsMainBoard)
	assert.Equal(t, dev.ID, personal.OwnerID)

	columns, err := st.ColumnsByBoard(personal.ID)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, DefaultColumnTitle, columns[0].Title)

	boards, err = svc.List(actor, dev.Email)
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}

func TestCreateBoardGeneratesUniqueSlugs(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	_, actor := createDev(t, st, "dev@example.com")

	first, err := svc.Create(actor, "Sprint Planning!")
	require.NoError(t, err)
	assert.Equal(t, "sprint-planning", first.Slug)
	assert.False(t, first.IsMainBoard)

	second, err := svc.Create(actor, "Sprint: Planning")
	require.NoError(t, err)
	assert.Equal(t, "sprint-planning-1", second.Slug)

	third, err := svc.Create(actor, "sprint planning")
	require.NoError(t, err)
	assert.Equal(t, "sprint-planning-2", third.Slug)

	columns, err := st.ColumnsByBoard(first.ID)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, DefaultColumnTitle, columns[0].Title)
}

func TestCreateBoardRequiresTitle(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	_, actor := createDev(t, st, "dev@example.com")

	_, err := svc.Create(actor, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMainBoardIsAdminGated(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	admin, adminActor := createAdmin(t, st)
	mainBoard := createBoard(t, st, admin.ID, "Main Board (Admin)", "main-board", true)

	_, devActor := createDev(t, st, "dev@example.com")

	_, err := svc.Update(devActor, mainBoard.ID, "Hijacked")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.Delete(devActor, mainBoard.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	updated, err := svc.Update(adminActor, mainBoard.ID, "Company Board")
	require.NoError(t, err)
	assert.Equal(t, "Company Board", updated.Title)
	assert.True(t, updated.IsMainBoard)
}

func TestUpdateMissingBoardIsNotFound(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	_, actor := createDev(t, st, "dev@example.com")

	_, err := svc.Update(actor, 9999, "Title")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBoardCascades(t *testing.T) {
	st := openTestStore(t)
	svc := NewBoardService(st)

	dev, actor := createDev(t, st, "dev@example.com")

	board := createBoard(t, st, dev.ID, "Work", "work", false)
	todo := createColumn(t, st, board.ID, "To Do", 1)
	done := createColumn(t, st, board.ID, "Done", 2)
	createTask(t, st, todo.ID, dev.ID, "t1", 1)
	createTask(t, st, done.ID, dev.ID, "t2", 1)

	other := createBoard(t, st, dev.ID, "Other", "other", false)
	otherColumn := createColumn(t, st, other.ID, "To Do", 1)
	createTask(t, st, otherColumn.ID, dev.ID, "keep", 1)

	require.NoError(t, svc.Delete(actor, board.ID))

	var boardCount, columnCount, taskCount int64
	require.NoError(t, st.DB().Model(&models.Board{}).Count(&boardCount).Error)
	require.NoError(t, st.DB().Model(&models.Column{}).Count(&columnCount).Error)
	require.NoError(t, st.DB().Model(&models.Task{}).Count(&taskCount).Error)

	assert.Equal(t, int64(1), boardCount)
	assert.Equal(t, int64(1), columnCount)
	assert.Equal(t, int64(1), taskCount)

	kept := taskPositions(t, st, otherColumn.ID)
	assert.Equal(t, map[string]int{"keep": 1}, kept)
}
