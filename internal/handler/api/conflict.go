package api

import (
	"net/http"

	reqdto "coshare-scheduler/internal/handler/dto/request"
	resdto "coshare-scheduler/internal/handler/dto/response"
	"coshare-scheduler/internal/handler/httperr"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConflictHandler struct {
	cmds commands.ConflictCommands
	q    queries.ConflictQueries
}

func NewConflictHandler(cmds commands.ConflictCommands, q queries.ConflictQueries) *ConflictHandler {
	return &ConflictHandler{cmds: cmds, q: q}
}

// @Summary List open conflicts
// @Description Non-terminal conflicts, oldest first. onlyMine keeps the ones the caller requested or must answer.
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param resourceId query string false "Resource ID"
// @Param onlyMine query bool false "Only conflicts involving the caller"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} queries.ConflictPage
// @Failure 400 {object} httperr.Response
// @Router /api/conflicts [get]
func (h *ConflictHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListConflictsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidRequestEncoding, err.Error()), "Invalid query", gin.H{"reason": err.Error()})
		return
	}
	page, err := h.q.GetPendingConflicts(c.Request.Context(), actor.UserID, q.ToFilter())
	if err != nil {
		httperr.AbortWithKind(c, err, "List conflicts failed")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get conflict
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conflict ID"
// @Success 200 {object} queries.ConflictSummary
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/conflicts/{id} [get]
func (h *ConflictHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.GetByID(c.Request.Context(), actor.UserID, id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Conflict not available")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Respond to conflict
// @Description Approve, reject, counter-offer, answer a counter-offer or withdraw. A response to an already resolved conflict reports already_terminal.
// @Tags conflicts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conflict ID"
// @Param request body reqdto.RespondToConflictRequest true "Decision"
// @Success 200 {object} resdto.RespondToConflictResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/conflicts/{id}/responses [post]
func (h *ConflictHandler) Respond(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RespondToConflictRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.RespondToConflict(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Respond to conflict failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRespondResult(result, actor.UserID))
}
