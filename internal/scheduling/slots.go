package scheduling

import (
	"iter"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultSlotStep     = 30 * time.Minute
	DefaultSlotDuration = 60 * time.Minute
)

type Generator struct {
	step   time.Duration
	logger logger.Logger
}

func NewGenerator(step time.Duration, logger logger.Logger) *Generator {
	if step <= 0 {
		step = DefaultSlotStep
	}
	return &Generator{step: step, logger: logger}
}

// Slots walks the amenity's operating window on date's calendar day and yields
// every window of the given duration that fits before closing, starts no
// earlier than now and overlaps none of the active reservations in busy.
// Candidate starts are step apart, so neighbouring slots may share time with
// each other but never with a reservation.
//
// A non-empty reason is returned with an empty sequence when the amenity does
// not operate that day. The sequence is lazy and may be ranged over repeatedly.
func (g *Generator) Slots(
	a *domain.Amenity,
	date time.Time,
	duration time.Duration,
	busy []*domain.Reservation,
	now time.Time,
) (iter.Seq[domain.Slot], string) {
	hours := g.effectiveHours(a)

	if !hours.OpenOn(date.Weekday()) {
		return func(func(domain.Slot) bool) {}, domain.ClosedReason
	}

	open := hours.Open.On(date)
	closing := hours.Close.On(date)

	return func(yield func(domain.Slot) bool) {
		for start := open; start.Before(closing); start = start.Add(g.step) {
			end := start.Add(duration)
			if end.After(closing) {
				return
			}
			if start.Before(now) || overlapsAny(start, end, busy) {
				continue
			}

			decision := Decide(a, Candidate{Start: start, End: end, Now: now})
			if !yield(domain.Slot{StartTime: start, EndTime: end, AutoApproved: decision.AutoApproved()}) {
				return
			}
		}
	}, ""
}

func (g *Generator) effectiveHours(a *domain.Amenity) domain.OperatingHours {
	hours, problems := a.Hours.Effective()
	for _, p := range problems {
		g.logger.Warn("amenity operating hours malformed, using safe default",
			logger.String("amenity_id", a.ID),
			logger.String("amenity", a.Name),
			logger.String("problem", p),
		)
	}
	return hours
}

func overlapsAny(start, end time.Time, busy []*domain.Reservation) bool {
	for _, r := range busy {
		if r.Status.Active() && r.Overlaps(start, end) {
			return true
		}
	}
	return false
}
