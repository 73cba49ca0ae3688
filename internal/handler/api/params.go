package api

import (
	"net/http"

	"coshare-scheduler/internal/handler/httperr"
	"coshare-scheduler/internal/handler/middleware"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errNoActor                = errs.New("authenticated actor missing from context")
	errInvalidIdempotencyKey  = errs.WithKind("idempotency key must be a UUID", errs.ErrInvalidInput)
	errInvalidPathID          = errs.WithKind("path id must be a UUID", errs.ErrInvalidInput)
	errInvalidRequestEncoding = errs.WithKind("request body failed validation", errs.ErrInvalidInput)
)

// requireActor aborts with 401 when the auth middleware did not run.
func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidPathID, err.Error()), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON aborts with 400 and the validator message when the body is malformed.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidRequestEncoding, err.Error()), "Invalid request", gin.H{"reason": err.Error()})
		return false
	}
	return true
}

// idempotencyKey returns nil when the optional header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIdempotencyKey, "Invalid idempotency key format", nil)
		return nil, false
	}
	return &key, true
}
