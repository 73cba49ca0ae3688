package response

import (
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationResponse struct {
	Reservation *queries.ReservationView `json:"reservation"`
	Conflict    *queries.ConflictSummary `json:"conflict,omitempty"`
	Replayed    bool                     `json:"replayed"`
}

func FromCreateReservationResult(r *commands.CreateReservationResult, viewerID uuid.UUID) *CreateReservationResponse {
	resp := &CreateReservationResponse{
		Reservation: queries.ToReservationView(r.Reservation),
		Replayed:    r.IsReplayed,
	}
	if r.Conflict != nil {
		resp.Conflict = queries.ToConflictSummary(r.Conflict, viewerID)
	}
	return resp
}

type PolicyResponse struct {
	HoursUntilStart  float64    `json:"hours_until_start"`
	Tier             string     `json:"tier"`
	FeeRate          float64    `json:"fee_rate"`
	TotalCostCents   int64      `json:"total_cost_cents"`
	FeeCents         int64      `json:"fee_cents"`
	FreeCancelBefore *time.Time `json:"free_cancel_before,omitempty"`
}

type RefundResponse struct {
	RefundCents int64   `json:"refund_cents"`
	RefundRate  float64 `json:"refund_rate"`
}

type CancellationAnalysisResponse struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	Policy        PolicyResponse  `json:"policy"`
	Refund        *RefundResponse `json:"refund,omitempty"`
	AnalyzedAt    time.Time       `json:"analyzed_at"`
}

func FromCancellationAnalysis(a *modification.CancellationAnalysis) *CancellationAnalysisResponse {
	resp := &CancellationAnalysisResponse{
		ReservationID: a.ReservationID,
		Policy: PolicyResponse{
			HoursUntilStart:  a.Policy.HoursUntilStart,
			Tier:             a.Policy.Tier,
			FeeRate:          a.Policy.FeeRate,
			TotalCostCents:   a.Policy.TotalCostCents,
			FeeCents:         a.Policy.FeeCents,
			FreeCancelBefore: a.Policy.FreeCancelBefore,
		},
		AnalyzedAt: a.AnalyzedAt,
	}
	if a.Refund != nil {
		resp.Refund = &RefundResponse{RefundCents: a.Refund.RefundCents, RefundRate: a.Refund.RefundRate}
	}
	return resp
}

type CancelReservationResponse struct {
	Reservation  *queries.ReservationView      `json:"reservation"`
	Cancellation *CancellationAnalysisResponse `json:"cancellation"`
}

func FromCancelReservationResult(r *commands.CancelReservationResult) *CancelReservationResponse {
	return &CancelReservationResponse{
		Reservation:  queries.ToReservationView(r.Reservation),
		Cancellation: FromCancellationAnalysis(&r.Analysis),
	}
}
