package queries

import (
	"context"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type ConflictFilter struct {
	ResourceID *uuid.UUID
	// OnlyMine keeps conflicts the caller requested or must respond to.
	OnlyMine bool
	After    string
	Limit    int
}

// OpenConflictQuery selects non-terminal conflicts in (created_at, id) order.
type OpenConflictQuery struct {
	ResourceID     *uuid.UUID
	InvolvedUserID *uuid.UUID
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type ConflictReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*conflict.Record, error)
	ListOpen(ctx context.Context, q OpenConflictQuery) ([]*conflict.Record, error)
}

type ConflictQueries interface {
	GetPendingConflicts(ctx context.Context, userID uuid.UUID, f ConflictFilter) (*ConflictPage, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ConflictSummary, error)
}

type conflictQueriesImpl struct {
	store ConflictReadStore
}

func NewConflictQueries(store ConflictReadStore) ConflictQueries {
	return &conflictQueriesImpl{store: store}
}

func (q *conflictQueriesImpl) GetPendingConflicts(ctx context.Context, userID uuid.UUID, f ConflictFilter) (*ConflictPage, error) {
	limit := ValidateLimit(f.Limit)
	query := OpenConflictQuery{
		ResourceID: f.ResourceID,
		// one extra row tells whether another page exists
		Limit: int32(limit + 1),
	}
	if f.OnlyMine {
		query.InvolvedUserID = &userID
	}
	if f.After != "" {
		ts, id, err := DecodeAfterCursor(f.After)
		if err != nil {
			return nil, err
		}
		query.AfterCreatedAt, query.AfterID = &ts, &id
	}

	recs, err := q.store.ListOpen(ctx, query)
	if err != nil {
		return nil, err
	}

	page := &ConflictPage{Items: make([]*ConflictSummary, 0, min(len(recs), limit))}
	for i, rec := range recs {
		if i == limit {
			last := recs[limit-1]
			next := EncodeAfterCursor(last.CreatedAt(), last.ID())
			page.NextCursor = &next
			break
		}
		page.Items = append(page.Items, ToConflictSummary(rec, userID))
	}
	return page, nil
}

func (q *conflictQueriesImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*ConflictSummary, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToConflictSummary(rec, userID), nil
}

func ToConflictSummary(rec *conflict.Record, viewerID uuid.UUID) *ConflictSummary {
	tally := rec.Tally()
	s := &ConflictSummary{
		ID:                    rec.ID(),
		ResourceID:            rec.ResourceID(),
		Kind:                  string(rec.Kind()),
		ChallengerID:          rec.ChallengerID(),
		ChallengerRequesterID: rec.ChallengerRequesterID(),
		IncumbentIDs:          rec.IncumbentIDs(),
		ResolutionType:        string(rec.ResolutionType()),
		State:                 string(rec.State()),
		Outcome:               string(rec.Outcome()),
		Tally: TallyView{
			Total:                      tally.Total,
			Approvals:                  tally.Approvals,
			Rejections:                 tally.Rejections,
			ApprovalPercentage:         tally.ApprovalPercentage,
			WeightedApprovalPercentage: tally.WeightedApproval,
			WeightedRejection:          tally.WeightedRejection,
		},
		AwaitingMyResponse: rec.AwaitsResponseFrom(viewerID),
		Note:               rec.Note(),
		CreatedAt:          rec.CreatedAt(),
		ResolvedAt:         rec.ResolvedAt(),
	}
	if w := rec.ProposedWindow(); w != nil {
		v := toWindowView(*w)
		s.ProposedWindow = &v
	}
	for _, p := range rec.Participants() {
		s.Participants = append(s.Participants, ParticipantView{
			UserID:            p.UserID,
			Weight:            p.Weight,
			OwnershipFraction: p.OwnershipFraction,
			HasApproved:       p.HasApproved,
			HasRejected:       p.HasRejected,
			RejectionReason:   p.RejectionReason,
			RespondedAt:       p.RespondedAt,
		})
	}
	if co := rec.CounterOffer(); co != nil {
		s.CounterOffer = &CounterOfferView{
			ProposedBy: co.ProposedBy,
			Window:     toWindowView(co.Window),
			Deadline:   co.Deadline,
			Accepted:   co.Accepted,
		}
	}
	if ar := rec.AutoResolution(); ar != nil {
		s.AutoResolution = &AutoResolutionView{
			WinnerID:      ar.WinnerID,
			ChallengerWon: ar.ChallengerWon,
			Reason:        string(ar.Reason),
			Explanation:   ar.Explanation,
		}
	}
	return s
}

func toWindowView(w reservation.TimeWindow) WindowView {
	return WindowView{Start: w.Start(), End: w.End()}
}
