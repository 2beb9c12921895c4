package api

import (
	"net/http"

	resdto "fleetops/internal/handler/dto/response"
	"fleetops/internal/handler/httperr"
	"fleetops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks queries.TaskQueries
}

func NewTaskHandler(tasks queries.TaskQueries) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// @Summary Task board
// @Description List tasks bucketed by deadline urgency
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TaskBoardItemResponse
// @Failure 401 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) ListBoard(c *gin.Context) {
	items, err := h.tasks.ListBoard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.TaskBoardItemResponse, len(items))
	for i, it := range items {
		response[i] = resdto.FromTaskBoardItem(it)
	}

	c.JSON(http.StatusOK, response)
}
