package request

import (
	"strings"
	"time"

	"coshare-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID     uuid.UUID `json:"resource_id" binding:"required"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required"`
	Purpose        string    `json:"purpose" binding:"max=500"`
	Priority       string    `json:"priority" binding:"omitempty,priority"`
	AutoConfirm    bool      `json:"auto_confirm"`
	ResolutionType string    `json:"resolution_type" binding:"omitempty,resolution_type"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID:     r.ResourceID,
		Start:          r.Start,
		End:            r.End,
		Purpose:        strings.TrimSpace(r.Purpose),
		Priority:       r.Priority,
		AutoConfirm:    r.AutoConfirm,
		ResolutionType: r.ResolutionType,
	}
}

type CancelReservationRequest struct {
	Reason    string `json:"reason" binding:"required,notblank,max=1000"`
	AcceptFee bool   `json:"accept_fee"`
}

func (r CancelReservationRequest) ToInput() commands.CancelReservationInput {
	return commands.CancelReservationInput{
		Reason:    strings.TrimSpace(r.Reason),
		AcceptFee: r.AcceptFee,
	}
}

type CheckOutRequest struct {
	DistanceKm float64 `json:"distance_km" binding:"gte=0"`
}
