package httperr

import (
	"net/http"

	"coshare-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithKind derives the status from the kind marker carried by err.
// Client-facing kinds echo the error text; internal failures only echo msg.
func AbortWithKind(c *gin.Context, err error, msg string) {
	if err == nil {
		panic("AbortWithKind: err cannot be nil")
	}

	kind := errs.KindOf(err)
	resp := Response{Status: StatusFor(kind)}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg
	if kind != errs.KindInternal {
		resp.Detail = gin.H{"reason": err.Error()}
	}

	abort(c, err, resp)
}

func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalidWindow, errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case errs.KindNotFound, errs.KindResourceNotFound:
		return http.StatusNotFound
	case errs.KindForbidden, errs.KindUnauthorizedResponder:
		return http.StatusForbidden
	case errs.KindStaleConflict, errs.KindConflictAlreadyTerminal, errs.KindIdempotencyConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
