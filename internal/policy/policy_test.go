package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinicius-yudi/taskboard/internal/types"
)

var (
	admin    = Actor{ID: 1, Role: types.RoleAdmin}
	owner    = Actor{ID: 2, Role: types.RoleDev}
	stranger = Actor{ID: 3, Role: types.RoleDev}

	mainBoard     = Board{ID: 10, OwnerID: 1, IsMain: true}
	personalBoard = Board{ID: 11, OwnerID: 2, IsMain: false}
	otherBoard    = Board{ID: 12, OwnerID: 3, IsMain: false}
)

func TestCanViewBoard(t *testing.T) {
	assert.True(t, CanViewBoard(owner, personalBoard))
	assert.False(t, CanViewBoard(stranger, personalBoard))

	// The main board is readable by everyone.
	assert.True(t, CanViewBoard(stranger, mainBoard))
	assert.True(t, CanViewBoard(admin, mainBoard))
}

func TestCanEditBoard(t *testing.T) {
	assert.True(t, CanEditBoard(owner, personalBoard))
	assert.False(t, CanEditBoard(stranger, personalBoard))

	// Main-board edits are admin-gated regardless of request shape.
	assert.True(t, CanEditBoard(admin, mainBoard))
	assert.False(t, CanEditBoard(owner, mainBoard))
	assert.False(t, CanEditBoard(stranger, mainBoard))
}

func TestCanManageColumnsAndTasks(t *testing.T) {
	assert.True(t, CanManageColumns(owner, personalBoard))
	assert.False(t, CanManageColumns(stranger, personalBoard))
	assert.False(t, CanManageColumns(stranger, mainBoard))

	assert.True(t, CanManageTasks(owner, personalBoard))
	assert.False(t, CanManageTasks(stranger, personalBoard))

	// Even an admin does not manage tasks on a board they do not own.
	assert.False(t, CanManageTasks(admin, personalBoard))
}

func TestCanToggleTask(t *testing.T) {
	assert.True(t, CanToggleTask(owner, owner.ID))
	assert.False(t, CanToggleTask(stranger, owner.ID))
}

func TestTaskVisible(t *testing.T) {
	// Personal board: creator only.
	assert.True(t, TaskVisible(owner, personalBoard, owner.ID))
	assert.False(t, TaskVisible(stranger, personalBoard, owner.ID))

	// Main board: everyone with board access.
	assert.True(t, TaskVisible(stranger, mainBoard, admin.ID))
	assert.True(t, TaskVisible(admin, mainBoard, admin.ID))
}

func TestCanMoveTask(t *testing.T) {
	// Same board: the usual ownership gate.
	assert.True(t, CanMoveTask(owner, personalBoard, personalBoard))
	assert.False(t, CanMoveTask(stranger, personalBoard, personalBoard))

	// Across boards: both ends must be owned.
	assert.False(t, CanMoveTask(owner, personalBoard, otherBoard))
	assert.False(t, CanMoveTask(stranger, personalBoard, otherBoard))

	secondBoard := Board{ID: 13, OwnerID: owner.ID}
	assert.True(t, CanMoveTask(owner, personalBoard, secondBoard))
}
