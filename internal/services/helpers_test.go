package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"github.com/vinicius-yudi/taskboard/internal/store"
	"github.com/vinicius-yudi/taskboard/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Board{}, &models.Column{}, &models.Task{}))

	return store.New(gdb)
}

func createUser(t *testing.T, st *store.Store, name, email, role string) (*models.User, policy.Actor) {
	t.Helper()

	user := &models.User{Name: name, Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, st.CreateUser(user))

	return user, policy.Actor{ID: user.ID, Role: role}
}

func createAdmin(t *testing.T, st *store.Store) (*models.User, policy.Actor) {
	t.Helper()
	return createUser(t, st, "Admin", "admin@example.com", types.RoleAdmin)
}

func createDev(t *testing.T, st *store.Store, email string) (*models.User, policy.Actor) {
	t.Helper()
	return createUser(t, st, "Dev", email, types.RoleDev)
}

func createBoard(t *testing.T, st *store.Store, ownerID uint, title, slug string, isMain bool) *models.Board {
	t.Helper()

	board := &models.Board{Title: title, Slug: slug, IsMainBoard: isMain, OwnerID: ownerID}
	require.NoError(t, st.CreateBoard(board))

	return board
}

func createColumn(t *testing.T, st *store.Store, boardID uint, title string, position int) *models.Column {
	t.Helper()

	column := &models.Column{Title: title, Position: position, BoardID: boardID}
	require.NoError(t, st.CreateColumn(column))

	return column
}

func createTask(t *testing.T, st *store.Store, columnID, ownerID uint, title string, position int) *models.Task {
	t.Helper()

	task := &models.Task{Title: title, Position: position, ColumnID: columnID, OwnerID: ownerID}
	require.NoError(t, st.CreateTask(task))

	return task
}

func taskPositions(t *testing.T, st *store.Store, columnID uint) map[string]int {
	t.Helper()

	var tasks []models.Task
	require.NoError(t, st.DB().Where("column_id = ?", columnID).Find(&tasks).Error)

	result := make(map[string]int, len(tasks))

	for _, task := range tasks {
		result[task.Title] = task.Position
	}

	return result
}
