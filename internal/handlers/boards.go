package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vinicius-yudi/taskboard/internal/policy"
	"github.com/vinicius-yudi/taskboard/internal/services"
	"github.com/vinicius-yudi/taskboard/internal/utils"
)

type BoardHandler struct {
	boards *services.BoardService
}

func NewBoardHandler(boards *services.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

// List triggers lazy provisioning: the first read creates the admin's main
// board or the user's personal board.
func (h *BoardHandler) List(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	actor := policy.Actor{ID: user.ID, Role: user.Role}
	boards, err := h.boards.List(actor, user.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]BoardResponse, 0, len(boards))

	for _, board := range boards {
		response = append(response, toBoardResponse(board))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *BoardHandler) Create(ctx *gin.Context) {
	var req CreateBoardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	board, err := h.boards.Create(actor, req.Title)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toBoardResponse(*board))
}

func (h *BoardHandler) Update(ctx *gin.Context) {
	var req UpdateBoardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	boardID, ok := idParam(ctx)

	if !ok {
		return
	}

	board, err := h.boards.Update(actor, boardID, req.Title)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toBoardResponse(*board))
}

func (h *BoardHandler) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)

	if !ok {
		return
	}

	boardID, ok := idParam(ctx)

	if !ok {
		return
	}

	if err := h.boards.Delete(actor, boardID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}
