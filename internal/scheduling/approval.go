package scheduling

import (
	"fmt"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

// Candidate is a reservation window being evaluated at instant Now.
type Candidate struct {
	Start time.Time
	End   time.Time
	Now   time.Time
}

type Decision struct {
	Status domain.ReservationStatus
	Reason string
}

func (d Decision) AutoApproved() bool {
	return d.Status == domain.StatusApproved
}

// Decide picks the initial status of a new reservation. The first matching
// rule wins; the order is part of the contract (a lounge with auto-approval
// rules still needs review).
func Decide(a *domain.Amenity, c Candidate) Decision {
	switch {
	case a.IsLounge():
		return Decision{
			Status: domain.StatusPending,
			Reason: "lounge reservations always require approval",
		}

	case a.RequiresApproval != nil && *a.RequiresApproval:
		return Decision{
			Status: domain.StatusPending,
			Reason: "amenity requires approval",
		}

	case a.AutoApproval != nil:
		duration := c.End.Sub(c.Start)
		inAdvance := c.Start.Sub(c.Now)
		maxDuration := time.Duration(a.AutoApproval.MaxDurationMinutes) * time.Minute
		minAdvance := time.Duration(a.Requirements.AdvanceBookingHours) * time.Hour

		if duration > maxDuration {
			return Decision{
				Status: domain.StatusPending,
				Reason: fmt.Sprintf("duration exceeds the %d minute auto-approval limit", a.AutoApproval.MaxDurationMinutes),
			}
		}
		if inAdvance < minAdvance {
			return Decision{
				Status: domain.StatusPending,
				Reason: fmt.Sprintf("booked less than %d hours in advance", a.Requirements.AdvanceBookingHours),
			}
		}
		return Decision{
			Status: domain.StatusApproved,
			Reason: "within auto-approval limits",
		}

	case a.RequiresApproval != nil:
		return Decision{
			Status: domain.StatusApproved,
			Reason: "amenity does not require approval",
		}

	default:
		return Decision{
			Status: domain.StatusPending,
			Reason: "approval required by default",
		}
	}
}
