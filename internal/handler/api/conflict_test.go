//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/user"
	"coshare-scheduler/internal/handler/api"
	reqdto "coshare-scheduler/internal/handler/dto/request"
	resdto "coshare-scheduler/internal/handler/dto/response"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/queries"
	"coshare-scheduler/internal/usecase/shared"
	"coshare-scheduler/tests/common/builder"
	"coshare-scheduler/tests/common/httptest"
	commandsmock "coshare-scheduler/tests/mock/commands"
	queriesmock "coshare-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConflictHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockConflictCommands
	mockQ    *queriesmock.MockConflictQueries
	actor    shared.Actor
	record   *conflict.Record
}

func (s *ConflictHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockConflictCommands(s.mockCtrl)
	s.mockQ = queriesmock.NewMockConflictQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleMember}
	h := api.NewConflictHandler(s.mockCmds, s.mockQ)

	rec, err := conflict.Open(conflict.OpenParams{
		ResourceID:            uuid.New(),
		ChallengerID:          uuid.New(),
		ChallengerRequesterID: uuid.New(),
		IncumbentIDs:          []uuid.UUID{uuid.New()},
		ResolutionType:        conflict.ResolutionSimpleApproval,
		Participants:          []conflict.Participant{{UserID: s.actor.UserID, Weight: 0.5, OwnershipFraction: 0.5}},
	}, builder.BaseTime)
	s.Require().NoError(err)
	s.record = rec

	auth := fakeAuth(s.actor)
	s.router.GET("/conflicts", auth, h.List)
	s.router.GET("/conflicts/:id", auth, h.Get)
	s.router.POST("/conflicts/:id/responses", auth, h.Respond)
}

func (s *ConflictHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConflictHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConflictHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *ConflictHandlerTestSuite) TestList() {
	s.Run("success: query string becomes the filter", func() {
		resourceID := uuid.New()
		next := "next-page"
		s.mockQ.EXPECT().
			GetPendingConflicts(gomock.Any(), s.actor.UserID, queries.ConflictFilter{
				ResourceID: &resourceID,
				OnlyMine:   true,
				After:      "abc",
				Limit:      10,
			}).
			Return(&queries.ConflictPage{Items: []*queries.ConflictSummary{{ID: s.record.ID()}}, NextCursor: &next}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/conflicts?resourceId="+resourceID.String()+"&onlyMine=true&after=abc&limit=10", nil, "bearer-token")

		var body queries.ConflictPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(s.record.ID(), body.Items[0].ID)
		s.Equal("next-page", *body.NextCursor)
	})

	bad := []struct {
		name  string
		query string
	}{
		{name: "resource id is not a uuid", query: "?resourceId=van"},
		{name: "limit above maximum", query: "?limit=201"},
		{name: "limit below minimum", query: "?limit=-1"},
	}
	for _, tc := range bad {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts"+tc.query, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		})
	}

	s.Run("error: malformed cursor from the query layer", func() {
		s.mockQ.EXPECT().GetPendingConflicts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conflicts?after=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "List conflicts failed")
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *ConflictHandlerTestSuite) TestRespond() {
	url := "/conflicts/" + s.record.ID().String() + "/responses"

	s.Run("success: approval", func() {
		s.mockCmds.EXPECT().
			RespondToConflict(gomock.Any(), s.record.ID(), commands.RespondInput{Decision: "approve"}, s.actor).
			Return(&commands.RespondResult{Conflict: s.record, Changed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, "bearer-token")

		var body resdto.RespondToConflictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Changed)
		s.False(body.AlreadyTerminal)
		s.Equal(s.record.ID(), body.Conflict.ID)
	})

	s.Run("success: late response reports already terminal", func() {
		s.mockCmds.EXPECT().
			RespondToConflict(gomock.Any(), s.record.ID(), gomock.Any(), s.actor).
			Return(&commands.RespondResult{Conflict: s.record, AlreadyTerminal: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "reject", "rejection_reason": "need it that day"}, "bearer-token")

		var body resdto.RespondToConflictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.AlreadyTerminal)
	})

	s.Run("success: counter-offer carries the window", func() {
		start := builder.BaseTime.Add(72 * time.Hour)
		end := start.Add(4 * time.Hour)
		s.mockCmds.EXPECT().
			RespondToConflict(gomock.Any(), s.record.ID(), gomock.Any(), s.actor).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.RespondInput, _ shared.Actor) (*commands.RespondResult, error) {
				s.Equal("counter_offer", in.Decision)
				s.Require().NotNil(in.CounterStart)
				s.True(start.Equal(*in.CounterStart))
				s.True(end.Equal(*in.CounterEnd))
				return &commands.RespondResult{Conflict: s.record, Changed: true}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "counter_offer", "counter_start": start, "counter_end": end}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	validation := []struct {
		name string
		body map[string]any
	}{
		{name: "missing decision", body: map[string]any{}},
		{name: "unknown decision", body: map[string]any{"decision": "maybe"}},
		{name: "counter-offer without window", body: map[string]any{"decision": "counter_offer"}},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	kinds := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "not a participant", err: conflict.ErrNotParticipant, expectCode: http.StatusForbidden},
		{name: "counter-offer expired", err: conflict.ErrCounterOfferExpired, expectCode: http.StatusUnprocessableEntity},
		{name: "already terminal", err: conflict.ErrAlreadyTerminal, expectCode: http.StatusConflict},
		{name: "unexpected failure", err: errors.New("boom"), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range kinds {
		s.Run("error kind: "+tc.name, func() {
			s.mockCmds.EXPECT().RespondToConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Respond to conflict failed")
		})
	}
}

// ================================================================================
// InternalHandler
// ================================================================================

func TestInternalHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	conflicts := commandsmock.NewMockConflictCommands(ctrl)
	notifications := commandsmock.NewMockNotificationCommands(ctrl)
	h := api.NewInternalHandler(conflicts, notifications)

	router := gin.New()
	router.POST("/internal/conflicts/expire", h.ExpireCounterOffers)
	router.POST("/internal/notifications/relay", h.RelayNotifications)

	conflicts.EXPECT().ExpireCounterOffers(gomock.Any()).Return(3, nil)
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/internal/conflicts/expire", nil, "")
	var expired resdto.ExpireCounterOffersResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &expired)
	if expired.Expired != 3 {
		t.Errorf("expired = %d, want 3", expired.Expired)
	}

	notifications.EXPECT().Relay(gomock.Any()).Return(0, errors.New("db down"))
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/internal/notifications/relay", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Relay notifications failed")
}
