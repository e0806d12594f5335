package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
)

// memReservations is an in-memory ReservationRepo. Unlike the Postgres
// store it only rejects overlaps when strict is set, which lets tests play
// the part of a racing writer.
type memReservations struct {
	mu     sync.Mutex
	items  map[string]*domain.Reservation
	strict bool

	userListErr error
	overdueErr  error
	updateErr   map[string]error
	onCreate    func(m *memReservations, r *domain.Reservation)
}

func newMemReservations() *memReservations {
	return &memReservations{
		items:     make(map[string]*domain.Reservation),
		strict:    true,
		updateErr: make(map[string]error),
	}
}

func (m *memReservations) put(r *domain.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.items[r.ID] = &cp
}

func (m *memReservations) get(id string) *domain.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.items[id]; ok {
		cp := *r
		return &cp
	}
	return nil
}

func (m *memReservations) Create(_ context.Context, r *domain.Reservation) error {
	m.mu.Lock()
	if m.strict {
		for _, other := range m.items {
			if other.AmenityID == r.AmenityID && other.Status.Active() && other.Overlaps(r.StartTime, r.EndTime) {
				m.mu.Unlock()
				return domain.ErrTimeConflict
			}
		}
	}
	cp := *r
	m.items[r.ID] = &cp
	hook := m.onCreate
	m.mu.Unlock()

	if hook != nil {
		hook(m, r)
	}
	return nil
}

func (m *memReservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if r := m.get(id); r != nil {
		return r, nil
	}
	return nil, domain.ErrReservationNotFound
}

func (m *memReservations) ListActiveByAmenity(_ context.Context, amenityID string, from, to time.Time) ([]*domain.Reservation, error) {
	return m.filter(func(r *domain.Reservation) bool {
		return r.AmenityID == amenityID && r.Status.Active() && r.Overlaps(from, to)
	}), nil
}

func (m *memReservations) ListActiveByUserAndAmenity(_ context.Context, userID, amenityID string) ([]*domain.Reservation, error) {
	if m.userListErr != nil {
		return nil, m.userListErr
	}
	return m.filter(func(r *domain.Reservation) bool {
		return r.UserID == userID && r.AmenityID == amenityID && r.Status.Active()
	}), nil
}

func (m *memReservations) ListByUser(_ context.Context, userID string) ([]*domain.Reservation, error) {
	return m.filter(func(r *domain.Reservation) bool { return r.UserID == userID }), nil
}

func (m *memReservations) ListOverduePending(_ context.Context, before time.Time) ([]*domain.Reservation, error) {
	if m.overdueErr != nil {
		return nil, m.overdueErr
	}
	return m.filter(func(r *domain.Reservation) bool {
		return r.Status == domain.StatusPending && r.StartTime.Before(before)
	}), nil
}

func (m *memReservations) UpdateStatus(_ context.Context, r *domain.Reservation, expected domain.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.updateErr[r.ID]; err != nil {
		return err
	}
	stored, ok := m.items[r.ID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if stored.Status != expected {
		return domain.ErrStatusChanged
	}
	stored.Status = r.Status
	stored.StatusReason = r.StatusReason
	stored.UpdatedAt = r.UpdatedAt
	return nil
}

func (m *memReservations) Reschedule(_ context.Context, r *domain.Reservation, expected domain.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[r.ID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if stored.Status != expected {
		return domain.ErrStatusChanged
	}
	for _, other := range m.items {
		if other.ID != r.ID && other.AmenityID == r.AmenityID && other.Status.Active() && other.Overlaps(r.StartTime, r.EndTime) {
			return domain.ErrTimeConflict
		}
	}
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memReservations) filter(keep func(*domain.Reservation) bool) []*domain.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.Reservation
	for _, r := range m.items {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Reservation) int { return a.StartTime.Compare(b.StartTime) })
	return out
}

type memCatalog struct {
	mu          sync.Mutex
	amenities   map[string]*domain.Amenity
	invalidated []string
}

func newMemCatalog(amenities ...*domain.Amenity) *memCatalog {
	c := &memCatalog{amenities: make(map[string]*domain.Amenity)}
	for _, a := range amenities {
		c.amenities[a.ID] = a
	}
	return c
}

func (c *memCatalog) GetByID(_ context.Context, id string) (*domain.Amenity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.amenities[id]
	if !ok {
		return nil, domain.ErrAmenityNotFound
	}
	cp := *a
	return &cp, nil
}

func (c *memCatalog) Invalidate(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, id)
}

type memUsers struct {
	users map[string]*domain.User
}

func newMemUsers(users ...*domain.User) *memUsers {
	m := &memUsers{users: make(map[string]*domain.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type notification struct {
	userID        string
	reservationID string
	status        domain.ReservationStatus
	created       bool
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) NotifyReservationCreated(_ context.Context, user *domain.User, r *domain.Reservation) {
	n.record(notification{userID: user.ID, reservationID: r.ID, status: r.Status, created: true})
}

func (n *recordingNotifier) NotifyReservationStatusChanged(_ context.Context, user *domain.User, r *domain.Reservation) {
	n.record(notification{userID: user.ID, reservationID: r.ID, status: r.Status})
}

func (n *recordingNotifier) record(item notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, item)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func (n *recordingNotifier) statuses() []domain.ReservationStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.ReservationStatus, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.status)
	}
	return out
}
