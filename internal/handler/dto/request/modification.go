package request

import (
	"strings"
	"time"

	"coshare-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProposeModificationRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Reason string    `json:"reason" binding:"required,notblank,max=500"`
}

func (r ProposeModificationRequest) ToInput() commands.ProposeModificationInput {
	return commands.ProposeModificationInput{
		Start:  r.Start,
		End:    r.End,
		Reason: strings.TrimSpace(r.Reason),
	}
}

type CommitModificationRequest struct {
	Token          uuid.UUID `json:"token" binding:"required"`
	ResolutionType string    `json:"resolution_type" binding:"omitempty,resolution_type"`
}

func (r CommitModificationRequest) ToInput() commands.CommitModificationInput {
	return commands.CommitModificationInput{
		Token:          r.Token,
		ResolutionType: r.ResolutionType,
	}
}
