package request

import (
	"strings"
	"time"

	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type RespondToConflictRequest struct {
	Decision        string     `json:"decision" binding:"required,decision"`
	RejectionReason string     `json:"rejection_reason" binding:"max=1000"`
	CounterStart    *time.Time `json:"counter_start" binding:"required_if=Decision counter_offer"`
	CounterEnd      *time.Time `json:"counter_end" binding:"required_if=Decision counter_offer"`
}

func (r RespondToConflictRequest) ToInput() commands.RespondInput {
	return commands.RespondInput{
		Decision:        r.Decision,
		RejectionReason: strings.TrimSpace(r.RejectionReason),
		CounterStart:    r.CounterStart,
		CounterEnd:      r.CounterEnd,
	}
}

type ListConflictsQuery struct {
	ResourceID string `form:"resourceId" binding:"omitempty,uuid"`
	OnlyMine   bool   `form:"onlyMine"`
	After      string `form:"after"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListConflictsQuery) ToFilter() queries.ConflictFilter {
	f := queries.ConflictFilter{
		OnlyMine: q.OnlyMine,
		After:    q.After,
		Limit:    q.Limit,
	}
	if q.ResourceID != "" {
		// already checked by the uuid binding tag
		id := uuid.MustParse(q.ResourceID)
		f.ResourceID = &id
	}
	return f
}
