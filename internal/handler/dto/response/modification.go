package response

import (
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ImpactResponse struct {
	HasConflicts     bool    `json:"has_conflicts"`
	ConflictCount    int     `json:"conflict_count"`
	TimeDeltaHours   float64 `json:"time_delta_hours"`
	RequiresApproval bool    `json:"requires_approval"`
}

type ConflictingBookingResponse struct {
	ReservationID uuid.UUID          `json:"reservation_id"`
	RequesterID   uuid.UUID          `json:"requester_id"`
	Window        queries.WindowView `json:"window"`
	Status        string             `json:"status"`
	OverlapHours  float64            `json:"overlap_hours"`
}

type ModificationAnalysisResponse struct {
	ReservationID       uuid.UUID                    `json:"reservation_id"`
	PreviousWindow      queries.WindowView           `json:"previous_window"`
	ProposedWindow      queries.WindowView           `json:"proposed_window"`
	Impact              ImpactResponse               `json:"impact"`
	ConflictingBookings []ConflictingBookingResponse `json:"conflicting_bookings"`
	DurationDeltaHours  float64                      `json:"duration_delta_hours"`
	AnalyzedAt          time.Time                    `json:"analyzed_at"`
}

func windowView(w reservation.TimeWindow) queries.WindowView {
	return queries.WindowView{Start: w.Start(), End: w.End()}
}

func FromModificationAnalysis(a modification.Analysis) ModificationAnalysisResponse {
	resp := ModificationAnalysisResponse{
		ReservationID:  a.ReservationID,
		PreviousWindow: windowView(a.PreviousWindow),
		ProposedWindow: windowView(a.ProposedWindow),
		Impact: ImpactResponse{
			HasConflicts:     a.Impact.HasConflicts,
			ConflictCount:    a.Impact.ConflictCount,
			TimeDeltaHours:   a.Impact.TimeDeltaHours,
			RequiresApproval: a.Impact.RequiresApproval,
		},
		ConflictingBookings: make([]ConflictingBookingResponse, len(a.ConflictingBookings)),
		DurationDeltaHours:  a.DurationDeltaHours,
		AnalyzedAt:          a.AnalyzedAt,
	}
	for i, b := range a.ConflictingBookings {
		resp.ConflictingBookings[i] = ConflictingBookingResponse{
			ReservationID: b.ReservationID,
			RequesterID:   b.RequesterID,
			Window:        windowView(b.Window),
			Status:        b.Status.String(),
			OverlapHours:  b.OverlapHours,
		}
	}
	return resp
}

type ProposeModificationResponse struct {
	Analysis  ModificationAnalysisResponse `json:"analysis"`
	Token     uuid.UUID                    `json:"token"`
	ExpiresAt time.Time                    `json:"expires_at"`
}

func FromProposeModificationResult(r *commands.ProposeModificationResult) *ProposeModificationResponse {
	return &ProposeModificationResponse{
		Analysis:  FromModificationAnalysis(r.Analysis),
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}

type CommitModificationResponse struct {
	Status      string                       `json:"status"`
	Reservation *queries.ReservationView     `json:"reservation"`
	Conflict    *queries.ConflictSummary     `json:"conflict,omitempty"`
	Analysis    ModificationAnalysisResponse `json:"analysis"`
}

func FromCommitModificationResult(r *commands.CommitModificationResult, viewerID uuid.UUID) *CommitModificationResponse {
	resp := &CommitModificationResponse{
		Status:      string(r.Status),
		Reservation: queries.ToReservationView(r.Reservation),
		Analysis:    FromModificationAnalysis(r.Analysis),
	}
	if r.Conflict != nil {
		resp.Conflict = queries.ToConflictSummary(r.Conflict, viewerID)
	}
	return resp
}
