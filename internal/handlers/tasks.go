package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinicius-yudi/taskboard/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ColumnID    uint   `json:"columnId" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type MoveTaskRequest struct {
	NewColumnID uint `json:"newColumnId" binding:"required"`
	NewOrder    *int `json:"newOrder" binding:"required"`
}

type SetDoneRequest struct {
	Done *bool `json:"done" binding:"required"`
}

func (h *TaskHandler) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	tasks, err := h.tasks.List(actor)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TaskHandler) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	taskID, ok := idParam(ctx)

	if !ok {
		return
	}

	task, err := h.tasks.Get(actor, taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(*task))
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	task, err := h.tasks.Create(actor, req.ColumnID, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(*task))
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	var req UpdateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	taskID, ok := idParam(ctx)

	if !ok {
		return
	}

	task, err := h.tasks.Update(actor, taskID, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(*task))
}

// Move applies the drag-and-drop reindex and answers with the destination
// board's full column set so the client resynchronizes in one round trip.
func (h *TaskHandler) Move(ctx *gin.Context) {
	var req MoveTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	taskID, ok := idParam(ctx)

	if !ok {
		return
	}

	columns, err := h.tasks.Move(actor, taskID, req.NewColumnID, *req.NewOrder)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toColumnResponses(columns))
}

func (h *TaskHandler) SetDone(ctx *gin.Context) {
	var req SetDoneRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	taskID, ok := idParam(ctx)

	if !ok {
		return
	}

	task, err := h.tasks.SetDone(actor, taskID, *req.Done)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(*task))
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	taskID, ok := idParam(ctx)

	if !ok {
		return
	}

	if err := h.tasks.Delete(actor, taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
