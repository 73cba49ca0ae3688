package api

import (
	"net/http"

	reqdto "coshare-scheduler/internal/handler/dto/request"
	resdto "coshare-scheduler/internal/handler/dto/response"
	"coshare-scheduler/internal/handler/httperr"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	mods commands.ModificationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, mods commands.ModificationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, mods: mods, q: q}
}

// @Summary Create reservation
// @Description Request a booking window. An overlap with existing bookings opens a conflict that is returned alongside the reservation.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays return the original result"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Success 200 {object} resdto.CreateReservationResponse "Replayed request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(), actor, key)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create reservation failed")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCreateReservationResult(result, actor.UserID))
}

// @Summary Get reservation
// @Description Reservation with its modification history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Reservation not available")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm reservation
// @Description Confirm a pending reservation that was created without auto-confirm
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.ConfirmReservation(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Confirm reservation failed")
		return
	}
	c.JSON(http.StatusOK, queries.ToReservationView(res))
}

// @Summary Check in
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.CheckIn(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Check-in failed")
		return
	}
	c.JSON(http.StatusOK, queries.ToReservationView(res))
}

// @Summary Check out
// @Description Completes the reservation and accrues usage to the requester
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckOutRequest true "Distance driven"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CheckOutRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.CheckOut(c.Request.Context(), id, req.DistanceKm, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Check-out failed")
		return
	}
	c.JSON(http.StatusOK, queries.ToReservationView(res))
}

// @Summary Preview cancellation
// @Description Fee and refund the caller would get by cancelling now. Nothing is changed.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancellationAnalysisResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/cancellation [get]
func (h *ReservationHandler) AnalyzeCancellation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	analysis, err := h.cmds.AnalyzeCancellation(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Cancellation analysis failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationAnalysis(analysis))
}

// @Summary Cancel reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Reason and fee acceptance"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.CancelReservation(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Cancel reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelReservationResult(result))
}

// @Summary Analyze a modification
// @Description Impact of moving the reservation to a new window. Returns a short-lived token for the commit.
// @Tags modifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ProposeModificationRequest true "Proposed window"
// @Success 200 {object} resdto.ProposeModificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/modifications [post]
func (h *ReservationHandler) ProposeModification(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProposeModificationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.mods.ProposeModification(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Modification analysis failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposeModificationResult(result))
}

// @Summary Commit a modification
// @Description Applies an analyzed modification. A contested window opens a conflict when a resolution type is given.
// @Tags modifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CommitModificationRequest true "Analysis token"
// @Success 200 {object} resdto.CommitModificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/modifications/commit [post]
func (h *ReservationHandler) CommitModification(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CommitModificationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.mods.CommitModification(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Commit modification failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommitModificationResult(result, actor.UserID))
}
