//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests. Transactions are
// serialized and run against a copy of the store, which replaces the store only on success.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/domain/resource"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobDead   = "dead"
)

type Job struct {
	shared.NotificationJob
	Status    string
	LastError string
}

type usageKey struct {
	resourceID, userID uuid.UUID
	period             time.Time
}

type idemKey struct {
	key, userID uuid.UUID
}

type state struct {
	resources     map[uuid.UUID]*resource.Resource
	owners        map[uuid.UUID]map[uuid.UUID]float64
	usage         map[usageKey]ownership.Usage
	reservations  map[uuid.UUID]*reservation.Reservation
	conflicts     map[uuid.UUID]*conflict.Record
	modifications []modification.Record
	proposals     map[uuid.UUID]modification.Proposal
	idempotency   map[idemKey]shared.IdempotencyRecord
	jobs          []Job
}

func newState() *state {
	return &state{
		resources:    map[uuid.UUID]*resource.Resource{},
		owners:       map[uuid.UUID]map[uuid.UUID]float64{},
		usage:        map[usageKey]ownership.Usage{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		conflicts:    map[uuid.UUID]*conflict.Record{},
		proposals:    map[uuid.UUID]modification.Proposal{},
		idempotency:  map[idemKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.resources {
		c.resources[k] = v
	}
	for k, v := range s.owners {
		m := make(map[uuid.UUID]float64, len(v))
		for u, f := range v {
			m[u] = f
		}
		c.owners[k] = m
	}
	for k, v := range s.usage {
		c.usage[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = cloneReservation(v)
	}
	for k, v := range s.conflicts {
		c.conflicts[k] = cloneRecord(v)
	}
	c.modifications = append(c.modifications, s.modifications...)
	for k, v := range s.proposals {
		c.proposals[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	c.jobs = append(c.jobs, s.jobs...)
	return c
}

type Store struct {
	mu    sync.Mutex
	state *state
	// staleUpdates makes the next n reservation updates lose an optimistic-concurrency race.
	staleUpdates int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinResource(ctx context.Context, resourceID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, ok := tx.(*memTx).st.resources[resourceID]; !ok {
			return errs.Mark(errs.Newf("resource %s", resourceID), errs.ErrResourceNotFound)
		}
		return fn(ctx, tx)
	})
}

func (s *Store) CommandReads() shared.CommandReads {
	return commandReads{store: s}
}

// Seeding helpers

func (s *Store) AddResource(name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	res, _ := resource.NewResource(id, name)
	s.state.resources[id] = res
	s.state.owners[id] = map[uuid.UUID]float64{}
	return id
}

func (s *Store) AddStakeholder(resourceID, userID uuid.UUID, fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.owners[resourceID][userID] = fraction
}

func (s *Store) SetUsage(resourceID, userID uuid.UUID, period time.Time, usage ownership.Usage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.usage[usageKey{resourceID, userID, period}] = usage
}

// PutReservation stores res as-is, bypassing version checks.
func (s *Store) PutReservation(res *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.reservations[res.ID()] = cloneReservation(res)
}

func (s *Store) InjectStaleUpdates(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staleUpdates = n
}

// Inspection helpers

func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.state.reservations[id]; ok {
		return cloneReservation(r)
	}
	return nil
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.state.reservations))
	for _, r := range s.state.reservations {
		out = append(out, cloneReservation(r))
	}
	reservation.SortByStart(out)
	return out
}

func (s *Store) Conflict(id uuid.UUID) *conflict.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.state.conflicts[id]; ok {
		return cloneRecord(r)
	}
	return nil
}

func (s *Store) Conflicts() []*conflict.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*conflict.Record, 0, len(s.state.conflicts))
	for _, r := range s.state.conflicts {
		out = append(out, cloneRecord(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Modifications(reservationID uuid.UUID) []modification.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []modification.Record
	for _, m := range s.state.modifications {
		if m.ReservationID == reservationID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) Usage(resourceID, userID uuid.UUID, period time.Time) ownership.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.usage[usageKey{resourceID, userID, period}]
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.state.jobs...)
}

func (s *Store) JobsByTopic(topic string) []Job {
	var out []Job
	for _, j := range s.Jobs() {
		if j.Topic == topic {
			out = append(out, j)
		}
	}
	return out
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Resources() shared.ResourceRepository         { return resourceRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t} }
func (t *memTx) Conflicts() shared.ConflictRepository         { return conflictRepo{t} }
func (t *memTx) Stakeholders() shared.StakeholderRepository   { return stakeholderRepo{t} }
func (t *memTx) Modifications() shared.ModificationRepository { return modificationRepo{t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }

type resourceRepo struct{ tx *memTx }

func (r resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.tx.st.resources[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "resource not found")
	}
	return res, nil
}

type reservationRepo struct{ tx *memTx }

func (r reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.tx.st.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return cloneReservation(res), nil
}

func (r reservationRepo) FindByResourceWindow(_ context.Context, resourceID uuid.UUID, w reservation.TimeWindow) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.tx.st.reservations {
		if res.ResourceID() == resourceID && res.Window().Overlaps(w) {
			out = append(out, cloneReservation(res))
		}
	}
	reservation.SortByStart(out)
	return out, nil
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.st.reservations[res.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	if res.IsBlocking() && r.collides(res) {
		return infra.NewRepoErr(infra.KindExclusionViolated, "window already held")
	}
	res.SetVersion(1)
	r.tx.st.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if r.tx.store.staleUpdates > 0 {
		r.tx.store.staleUpdates--
		return infra.NewRepoErr(infra.KindStale, "reservation was modified concurrently")
	}
	stored, ok := r.tx.st.reservations[res.ID()]
	if !ok || stored.Version() != res.Version() {
		return infra.NewRepoErr(infra.KindStale, "reservation was modified concurrently")
	}
	if res.IsBlocking() && r.collides(res) {
		return infra.NewRepoErr(infra.KindExclusionViolated, "window already held")
	}
	res.SetVersion(res.Version() + 1)
	r.tx.st.reservations[res.ID()] = cloneReservation(res)
	return nil
}

// collides mirrors the exclusion constraint: two confirmed or active windows of one resource never overlap.
func (r reservationRepo) collides(res *reservation.Reservation) bool {
	if res.Status() != reservation.StatusConfirmed && res.Status() != reservation.StatusActive {
		return false
	}
	for _, other := range r.tx.st.reservations {
		if other.ID() == res.ID() || other.ResourceID() != res.ResourceID() {
			continue
		}
		if (other.Status() == reservation.StatusConfirmed || other.Status() == reservation.StatusActive) &&
			other.Window().Overlaps(res.Window()) {
			return true
		}
	}
	return false
}

type conflictRepo struct{ tx *memTx }

func (r conflictRepo) FindByID(_ context.Context, id uuid.UUID) (*conflict.Record, error) {
	rec, ok := r.tx.st.conflicts[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "conflict not found")
	}
	return cloneRecord(rec), nil
}

func (r conflictRepo) FindOpenByReservation(_ context.Context, reservationID uuid.UUID) ([]*conflict.Record, error) {
	var out []*conflict.Record
	for _, rec := range r.tx.st.conflicts {
		if !rec.IsTerminal() && rec.InvolvesReservation(reservationID) {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

func (r conflictRepo) Create(_ context.Context, rec *conflict.Record) error {
	rec.SetVersion(1)
	r.tx.st.conflicts[rec.ID()] = cloneRecord(rec)
	return nil
}

func (r conflictRepo) Update(_ context.Context, rec *conflict.Record) error {
	stored, ok := r.tx.st.conflicts[rec.ID()]
	if !ok || stored.Version() != rec.Version() {
		return infra.NewRepoErr(infra.KindStale, "conflict was modified concurrently")
	}
	rec.SetVersion(rec.Version() + 1)
	r.tx.st.conflicts[rec.ID()] = cloneRecord(rec)
	return nil
}

type stakeholderRepo struct{ tx *memTx }

func (r stakeholderRepo) ListByResource(_ context.Context, resourceID uuid.UUID, periodStart time.Time) ([]ownership.Stakeholder, error) {
	var out []ownership.Stakeholder
	for userID, fraction := range r.tx.st.owners[resourceID] {
		out = append(out, ownership.Stakeholder{
			UserID:            userID,
			ResourceID:        resourceID,
			OwnershipFraction: fraction,
			Usage:             r.tx.st.usage[usageKey{resourceID, userID, periodStart}],
			PeriodStart:       periodStart,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID.String() < out[j].UserID.String() })
	return out, nil
}

func (r stakeholderRepo) AccrueUsage(_ context.Context, resourceID, userID uuid.UUID, periodStart time.Time, usage ownership.Usage) error {
	if _, ok := r.tx.st.owners[resourceID][userID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "stakeholder not found")
	}
	k := usageKey{resourceID, userID, periodStart}
	r.tx.st.usage[k] = r.tx.st.usage[k].Add(usage)
	return nil
}

type modificationRepo struct{ tx *memTx }

func (r modificationRepo) Append(_ context.Context, rec *modification.Record) error {
	r.tx.st.modifications = append(r.tx.st.modifications, *rec)
	return nil
}

func (r modificationRepo) ListByReservation(_ context.Context, reservationID uuid.UUID) ([]*modification.Record, error) {
	var out []*modification.Record
	for _, m := range r.tx.st.modifications {
		if m.ReservationID == reservationID {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r modificationRepo) SaveProposal(_ context.Context, p *modification.Proposal) error {
	r.tx.st.proposals[p.Token] = *p
	return nil
}

func (r modificationRepo) FindProposal(_ context.Context, token uuid.UUID) (*modification.Proposal, error) {
	p, ok := r.tx.st.proposals[token]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "modification analysis not found")
	}
	return &p, nil
}

func (r modificationRepo) MarkProposalUsed(_ context.Context, p *modification.Proposal) error {
	stored, ok := r.tx.st.proposals[p.Token]
	if !ok || stored.UsedAt != nil {
		return infra.NewRepoErr(infra.KindStale, "modification analysis was already committed")
	}
	r.tx.st.proposals[p.Token] = *p
	return nil
}

type idempotencyRepo struct{ tx *memTx }

func (r idempotencyRepo) TryInsert(_ context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, userID}
	// keys never expire within a test
	if _, ok := r.tx.st.idempotency[k]; ok {
		return false, nil
	}
	r.tx.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) Get(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.tx.st.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return &rec, nil
}

func (r idempotencyRepo) Complete(_ context.Context, key, userID, reservationID uuid.UUID, conflictID *uuid.UUID) error {
	k := idemKey{key, userID}
	rec := r.tx.st.idempotency[k]
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultReservationID = &reservationID
	rec.ResultConflictID = conflictID
	r.tx.st.idempotency[k] = rec
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.tx.st.jobs = append(r.tx.st.jobs, Job{
		NotificationJob: shared.NotificationJob{ID: uuid.New(), Kind: kind, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          JobQueued,
	})
	return nil
}

func (r notificationRepo) ClaimPending(_ context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, j := range r.tx.st.jobs {
		if int32(len(out)) >= limit {
			break
		}
		if j.Status == JobQueued && !j.RunAt.After(now) {
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

func (r notificationRepo) MarkSent(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(j *Job) {
		j.Status = JobSent
		j.Attempts++
		j.LastError = ""
	})
}

func (r notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, lastError string, retryAt time.Time) error {
	return r.update(id, func(j *Job) {
		j.Attempts++
		j.Status = JobQueued
		if j.Attempts >= repository.MaxNotificationAttempts {
			j.Status = JobDead
		}
		j.LastError = lastError
		j.RunAt = retryAt
	})
}

func (r notificationRepo) update(id uuid.UUID, fn func(j *Job)) error {
	for i := range r.tx.st.jobs {
		if r.tx.st.jobs[i].ID == id {
			fn(&r.tx.st.jobs[i])
			return nil
		}
	}
	return infra.NewRepoErr(infra.KindNotFound, "notification job not found")
}

type commandReads struct{ store *Store }

func (c commandReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	res, ok := c.store.state.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return &shared.ReservationSnapshot{
		ID:          res.ID(),
		ResourceID:  res.ResourceID(),
		RequesterID: res.RequesterID(),
		Status:      string(res.Status()),
	}, nil
}

func (c commandReads) ConflictByID(_ context.Context, id uuid.UUID) (*shared.ConflictSnapshot, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	rec, ok := c.store.state.conflicts[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "conflict not found")
	}
	return &shared.ConflictSnapshot{ID: rec.ID(), ResourceID: rec.ResourceID(), State: string(rec.State())}, nil
}

func (c commandReads) ExpiredCounterOffers(_ context.Context, now time.Time, limit int32) ([]shared.ConflictSnapshot, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	var out []shared.ConflictSnapshot
	for _, rec := range c.store.state.conflicts {
		co := rec.CounterOffer()
		if rec.State() != conflict.StateCounterOfferMade || co == nil || co.Deadline == nil || co.Deadline.After(now) {
			continue
		}
		out = append(out, shared.ConflictSnapshot{ID: rec.ID(), ResourceID: rec.ResourceID(), State: string(rec.State())})
	}
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	var cost *reservation.Money
	if r.TotalCost() != nil {
		c := *r.TotalCost()
		cost = &c
	}
	var approver *uuid.UUID
	if r.ApproverID() != nil {
		a := *r.ApproverID()
		approver = &a
	}
	return reservation.ReconstructReservation(
		r.ID(), r.ResourceID(), r.RequesterID(), r.Window(), r.Purpose(), r.Priority(), r.Status(),
		cost, approver, r.Version(), r.CreatedAt(), r.UpdatedAt(),
	)
}

func cloneRecord(r *conflict.Record) *conflict.Record {
	var proposed *reservation.TimeWindow
	if r.ProposedWindow() != nil {
		w := *r.ProposedWindow()
		proposed = &w
	}
	var co *conflict.CounterOffer
	if r.CounterOffer() != nil {
		c := *r.CounterOffer()
		co = &c
	}
	var auto *conflict.AutoResolution
	if r.AutoResolution() != nil {
		a := *r.AutoResolution()
		auto = &a
	}
	return conflict.ReconstructRecord(
		r.ID(), r.ResourceID(), r.Kind(), r.ChallengerID(), r.ChallengerRequesterID(),
		r.IncumbentIDs(), proposed, r.ResolutionType(), r.State(), r.Participants(),
		co, auto, r.Note(), r.Version(), r.CreatedAt(), r.UpdatedAt(), r.ResolvedAt(),
	)
}
