package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vinicius-yudi/taskboard/internal/apperrors"
	"github.com/vinicius-yudi/taskboard/internal/models"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"github.com/vinicius-yudi/taskboard/internal/services"
	"github.com/vinicius-yudi/taskboard/internal/utils"
)

// Wire shapes kept compatible with the original frontend (camelCase,
// position exposed as "order", owner as "userId").

type BoardResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	IsMainBoard bool      `json:"isMainBoard"`
	OwnerID     uint      `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ColumnResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Order     int            `json:"order"`
	BoardID   uint           `json:"boardId"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	Order       int       `json:"order"`
	ColumnID    uint      `json:"columnId"`
	OwnerID     uint      `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBoardResponse(board models.Board) BoardResponse {
	return BoardResponse{
		ID:          board.ID,
		Title:       board.Title,
		Slug:        board.Slug,
		IsMainBoard: board.IsMainBoard,
		OwnerID:     board.OwnerID,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
}

func toTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Done:        task.Done,
		Order:       task.Position,
		ColumnID:    task.ColumnID,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toColumnResponse(column models.Column, tasks []models.Task) ColumnResponse {
	taskResponses := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		taskResponses = append(taskResponses, toTaskResponse(task))
	}

	return ColumnResponse{
		ID:        column.ID,
		Title:     column.Title,
		Order:     column.Position,
		BoardID:   column.BoardID,
		Tasks:     taskResponses,
		CreatedAt: column.CreatedAt,
		UpdatedAt: column.UpdatedAt,
	}
}

func toColumnResponses(columns []services.ColumnWithTasks) []ColumnResponse {
	responses := make([]ColumnResponse, 0, len(columns))

	for _, column := range columns {
		responses = append(responses, toColumnResponse(column.Column, column.Tasks))
	}

	return responses
}

// currentActor extracts the authenticated principal for policy decisions.
func currentActor(ctx *gin.Context) (policy.Actor, bool) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return policy.Actor{}, false
	}

	return policy.Actor{ID: user.ID, Role: user.Role}, true
}

// respondError maps the service error taxonomy to HTTP statuses. Forbidden
// responses carry a fixed message so nothing about the resource leaks.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, apperrors.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
