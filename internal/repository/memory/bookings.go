package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/repository/base"
)

// BookingRepository keeps bookings in insertion order.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
	index    map[uuid.UUID]int
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{index: make(map[uuid.UUID]int)}
}

func (r *BookingRepository) Create(_ context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[booking.ID]; exists {
		return fmt.Errorf("create booking %s: %w", booking.ID, base.ErrDuplicate)
	}

	booking.CreatedAt = time.Now().UTC()
	r.index[booking.ID] = len(r.bookings)
	r.bookings = append(r.bookings, cloneBooking(*booking))
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	out := cloneBooking(r.bookings[i])
	return &out, nil
}

func (r *BookingRepository) List(_ context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Booking, 0, len(r.bookings))
	for i := range r.bookings {
		if !filter.Matches(&r.bookings[i]) {
			continue
		}
		cp := cloneBooking(r.bookings[i])
		out = append(out, &cp)
	}
	return out, nil
}

func cloneBooking(b model.Booking) model.Booking {
	b.GameTypes = slices.Clone(b.GameTypes)
	b.SelectedAddOns = slices.Clone(b.SelectedAddOns)
	if b.Cost != nil {
		cost := *b.Cost
		b.Cost = &cost
	}
	if b.OrganizerID != nil {
		id := *b.OrganizerID
		b.OrganizerID = &id
	}
	b.Organizer = nil
	return b
}
