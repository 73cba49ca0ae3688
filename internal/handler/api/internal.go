package api

import (
	"net/http"

	resdto "coshare-scheduler/internal/handler/dto/response"
	"coshare-scheduler/internal/handler/httperr"
	"coshare-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// InternalHandler serves the callbacks of the external scheduler.
type InternalHandler struct {
	conflicts     commands.ConflictCommands
	notifications commands.NotificationCommands
}

func NewInternalHandler(conflicts commands.ConflictCommands, notifications commands.NotificationCommands) *InternalHandler {
	return &InternalHandler{conflicts: conflicts, notifications: notifications}
}

// @Summary Expire counter-offers
// @Description Force-rejects counter-offers whose deadline passed
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpireCounterOffersResponse
// @Failure 403 {object} httperr.Response
// @Router /api/internal/conflicts/expire [post]
func (h *InternalHandler) ExpireCounterOffers(c *gin.Context) {
	n, err := h.conflicts.ExpireCounterOffers(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err, "Expire counter-offers failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ExpireCounterOffersResponse{Expired: n})
}

// @Summary Relay notifications
// @Description Delivers one batch of queued notifications
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RelayNotificationsResponse
// @Failure 403 {object} httperr.Response
// @Router /api/internal/notifications/relay [post]
func (h *InternalHandler) RelayNotifications(c *gin.Context) {
	sent, err := h.notifications.Relay(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err, "Relay notifications failed")
		return
	}
	c.JSON(http.StatusOK, resdto.RelayNotificationsResponse{Sent: sent})
}
