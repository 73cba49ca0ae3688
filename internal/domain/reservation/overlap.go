package reservation

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// FindOverlaps returns the blocking reservations among candidates whose windows intersect window,
// ordered by start, then creation time, then id.
func FindOverlaps(candidates []*Reservation, window TimeWindow, exclude *uuid.UUID) []*Reservation {
	var out []*Reservation
	for _, c := range candidates {
		if c == nil || !c.IsBlocking() {
			continue
		}
		if exclude != nil && c.id == *exclude {
			continue
		}
		if !c.window.Overlaps(window) {
			continue
		}
		out = append(out, c)
	}
	SortByStart(out)
	return out
}

func SortByStart(rs []*Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if !a.window.start.Equal(b.window.start) {
			return a.window.start.Before(b.window.start)
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return bytes.Compare(a.id[:], b.id[:]) < 0
	})
}

func IDs(rs []*Reservation) []uuid.UUID {
	ids := make([]uuid.UUID, len(rs))
	for i, r := range rs {
		ids[i] = r.id
	}
	return ids
}
