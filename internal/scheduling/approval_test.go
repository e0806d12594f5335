package scheduling

import (
	"testing"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func jacuzzi() *domain.Amenity {
	return &domain.Amenity{
		ID:           "a-jacuzzi",
		Name:         "Jacuzzi",
		Category:     domain.CategoryHotTub,
		Hours:        domain.OperatingHours{Days: domain.AllWeekdays(), Open: 7 * 60, Close: 21 * 60},
		AutoApproval: &domain.AutoApprovalRules{MaxDurationMinutes: 60, MaxBookingsPerDay: 1},
		Active:       true,
	}
}

func lounge() *domain.Amenity {
	return &domain.Amenity{
		ID:       "a-lounge",
		Name:     "Community Lounge",
		Category: domain.CategoryLounge,
		Hours:    domain.OperatingHours{Days: domain.AllWeekdays(), Open: 8 * 60, Close: 23 * 60},
		Active:   true,
	}
}

func TestDecide(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	in3h := now.Add(3 * time.Hour)

	tests := []struct {
		name    string
		amenity func() *domain.Amenity
		start   time.Time
		length  time.Duration
		want    domain.ReservationStatus
	}{
		{
			name:    "jacuzzi 60 minutes is auto-approved",
			amenity: jacuzzi,
			start:   in3h,
			length:  60 * time.Minute,
			want:    domain.StatusApproved,
		},
		{
			name:    "jacuzzi 90 minutes needs review",
			amenity: jacuzzi,
			start:   in3h,
			length:  90 * time.Minute,
			want:    domain.StatusPending,
		},
		{
			name: "lounge with satisfied auto-approval rules still needs review",
			amenity: func() *domain.Amenity {
				a := lounge()
				a.AutoApproval = &domain.AutoApprovalRules{MaxDurationMinutes: 240}
				a.RequiresApproval = boolPtr(false)
				return a
			},
			start:  in3h,
			length: time.Hour,
			want:   domain.StatusPending,
		},
		{
			name: "explicit approval flag beats auto-approval rules",
			amenity: func() *domain.Amenity {
				a := jacuzzi()
				a.RequiresApproval = boolPtr(true)
				return a
			},
			start:  in3h,
			length: 30 * time.Minute,
			want:   domain.StatusPending,
		},
		{
			name: "advance booking hours not met",
			amenity: func() *domain.Amenity {
				a := jacuzzi()
				a.Requirements.AdvanceBookingHours = 24
				return a
			},
			start:  in3h,
			length: 30 * time.Minute,
			want:   domain.StatusPending,
		},
		{
			name: "advance booking hours met exactly",
			amenity: func() *domain.Amenity {
				a := jacuzzi()
				a.Requirements.AdvanceBookingHours = 3
				return a
			},
			start:  in3h,
			length: 60 * time.Minute,
			want:   domain.StatusApproved,
		},
		{
			name: "explicitly no approval required",
			amenity: func() *domain.Amenity {
				a := jacuzzi()
				a.AutoApproval = nil
				a.RequiresApproval = boolPtr(false)
				return a
			},
			start:  in3h,
			length: 8 * time.Hour,
			want:   domain.StatusApproved,
		},
		{
			name: "no rules defaults to pending",
			amenity: func() *domain.Amenity {
				a := jacuzzi()
				a.AutoApproval = nil
				return a
			},
			start:  in3h,
			length: 30 * time.Minute,
			want:   domain.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Start: tt.start, End: tt.start.Add(tt.length), Now: now}
			got := Decide(tt.amenity(), c)

			assert.Equal(t, tt.want, got.Status)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	a := jacuzzi()
	c := Candidate{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Now: now}

	first := Decide(a, c)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Decide(a, c))
	}
	assert.Equal(t, jacuzzi(), a)
}
