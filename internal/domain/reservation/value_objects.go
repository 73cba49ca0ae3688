package reservation

import (
	"fmt"
	"time"

	"coshare-scheduler/internal/pkg/errs"
)

var (
	ErrWindowOrder       = errs.WithKind("window end must be after start", errs.ErrInvalidWindow)
	ErrWindowTooShort    = errs.WithKind("window is shorter than the minimum duration", errs.ErrInvalidWindow)
	ErrWindowTooLong     = errs.WithKind("window is longer than the maximum duration", errs.ErrInvalidWindow)
	ErrWindowInPast      = errs.WithKind("window starts before the required lead time", errs.ErrInvalidWindow)
	ErrWindowMissingTime = errs.WithKind("window start and end are required", errs.ErrInvalidWindow)
)

// TimeWindow is the half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, ErrWindowMissingTime
	}
	if !end.After(start) {
		return TimeWindow{}, ErrWindowOrder
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

func MustTimeWindow(start, end time.Time) TimeWindow {
	w, err := NewTimeWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

func (w TimeWindow) Start() time.Time        { return w.start }
func (w TimeWindow) End() time.Time          { return w.end }
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }
func (w TimeWindow) Hours() float64          { return w.Duration().Hours() }
func (w TimeWindow) IsZero() bool            { return w.start.IsZero() && w.end.IsZero() }

// Overlaps reports a0 < b1 && b0 < a1, so back-to-back windows never overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w TimeWindow) OverlapDuration(other TimeWindow) time.Duration {
	if !w.Overlaps(other) {
		return 0
	}
	start := w.start
	if other.start.After(start) {
		start = other.start
	}
	end := w.end
	if other.end.Before(end) {
		end = other.end
	}
	return end.Sub(start)
}

func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

type WindowBounds struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	LeadTime    time.Duration
}

func (b WindowBounds) Validate(w TimeWindow, now time.Time) error {
	d := w.Duration()
	if b.MinDuration > 0 && d < b.MinDuration {
		return ErrWindowTooShort
	}
	if b.MaxDuration > 0 && d > b.MaxDuration {
		return ErrWindowTooLong
	}
	if w.start.Before(now.Add(b.LeadTime)) {
		return ErrWindowInPast
	}
	return nil
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) MultiplyRate(rate float64) Money {
	return NewMoney(int64(float64(m.cents)*rate + 0.5))
}

func (m Money) Sub(other Money) Money {
	return NewMoney(m.cents - other.cents)
}

type Purpose struct {
	value string
}

func NewPurpose(value string) Purpose {
	return Purpose{value: value}
}

func (p Purpose) String() string { return p.value }
func (p Purpose) IsEmpty() bool  { return p.value == "" }
