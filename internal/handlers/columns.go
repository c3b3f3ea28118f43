package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vinicius-yudi/taskboard/internal/services"
)

type ColumnHandler struct {
	columns *services.ColumnService
}

func NewColumnHandler(columns *services.ColumnService) *ColumnHandler {
	return &ColumnHandler{columns: columns}
}

type CreateColumnRequest struct {
	Title   string `json:"title" binding:"required"`
	BoardID uint   `json:"boardId" binding:"required"`
}

type UpdateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

// List returns the board's columns with the tasks visible to the actor.
func (h *ColumnHandler) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	boardID, err := strconv.ParseUint(ctx.Query("boardId"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "boardId is required"})
		return
	}

	columns, err := h.columns.ListWithTasks(actor, uint(boardID))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toColumnResponses(columns))
}

func (h *ColumnHandler) Create(ctx *gin.Context) {
	var req CreateColumnRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	column, err := h.columns.Create(actor, req.BoardID, req.Title)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toColumnResponse(*column, nil))
}

func (h *ColumnHandler) Update(ctx *gin.Context) {
	var req UpdateColumnRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	columnID, ok := idParam(ctx)

	if !ok {
		return
	}

	column, err := h.columns.UpdateTitle(actor, columnID, req.Title)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toColumnResponse(*column, nil))
}

func (h *ColumnHandler) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	columnID, ok := idParam(ctx)

	if !ok {
		return
	}

	if err := h.columns.Delete(actor, columnID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
