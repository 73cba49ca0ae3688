package response

import (
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type RespondToConflictResponse struct {
	Conflict        *queries.ConflictSummary `json:"conflict"`
	AlreadyTerminal bool                     `json:"already_terminal"`
	Changed         bool                     `json:"changed"`
}

func FromRespondResult(r *commands.RespondResult, viewerID uuid.UUID) *RespondToConflictResponse {
	return &RespondToConflictResponse{
		Conflict:        queries.ToConflictSummary(r.Conflict, viewerID),
		AlreadyTerminal: r.AlreadyTerminal,
		Changed:         r.Changed,
	}
}

type ExpireCounterOffersResponse struct {
	Expired int `json:"expired"`
}

type RelayNotificationsResponse struct {
	Sent int `json:"sent"`
}
