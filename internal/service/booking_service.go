package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/pricing"
)

// Quote is a priced selection that has not been stored.
type Quote struct {
	Cost     model.Cost `json:"cost"`
	Progress float64    `json:"progress"`
}

type BookingService struct {
	bookings BookingRepository
	players  PlayerRepository
	catalog  *catalog.Catalog
	engine   *pricing.Engine
	logger   *zap.Logger
}

func NewBookingService(
	bookings BookingRepository,
	players PlayerRepository,
	cat *catalog.Catalog,
	engine *pricing.Engine,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		players:  players,
		catalog:  cat,
		engine:   engine,
		logger:   logger,
	}
}

// ValidateSelection checks the draft against what its course offers.
// CreateBooking does not call it; strict callers do so first.
func (s *BookingService) ValidateSelection(draft model.BookingDraft) error {
	if err := s.catalog.Validate(draft.Location, draft.GameTypes, draft.SelectedAddOns); err != nil {
		return fmt.Errorf("%w: %w", ErrSelectionNotOffered, err)
	}
	return nil
}

// Quote prices a draft without storing it.
func (s *BookingService) Quote(draft model.BookingDraft) (*Quote, error) {
	cost, err := s.engine.Quote(selectionOf(draft))
	if err != nil {
		return nil, fmt.Errorf("quote booking: %w", err)
	}

	return &Quote{
		Cost:     cost,
		Progress: pricing.ProgressPercentage(draft.NumberOfPlayers),
	}, nil
}

// CreateBooking prices the draft, assigns a fresh ID and stores the result.
// The cost is fixed at this point and never recomputed.
func (s *BookingService) CreateBooking(ctx context.Context, draft model.BookingDraft) (*model.Booking, error) {
	if draft.NumberOfPlayers <= 0 {
		return nil, &pricing.InvalidPlayerCountError{Value: strconv.Itoa(draft.NumberOfPlayers)}
	}

	cost, err := s.engine.Quote(selectionOf(draft))
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}

	booking := &model.Booking{
		ID:              uuid.New(),
		Title:           draft.Title,
		SkillLevel:      draft.SkillLevel,
		Location:        draft.Location,
		GameTypes:       slices.Clone(draft.GameTypes),
		Date:            draft.Date,
		TeeTime:         draft.TeeTime,
		NumberOfPlayers: draft.NumberOfPlayers,
		Details:         draft.Details,
		SelectedAddOns:  slices.Clone(draft.SelectedAddOns),
		Cost:            &cost,
		OrganizerID:     draft.OrganizerID,
	}
	if booking.GameTypes == nil {
		booking.GameTypes = []string{}
	}
	if booking.SelectedAddOns == nil {
		booking.SelectedAddOns = []string{}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Tee time booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("course", booking.Location),
		zap.String("game_type", booking.GameType()),
		zap.String("date", booking.Date),
		zap.Int("players", booking.NumberOfPlayers),
		zap.Float64("total", cost.Total),
	)

	return booking, nil
}

// GetByID returns the booking with its organizer resolved. A dangling
// organizer reference resolves to no organizer.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if err := s.resolveOrganizers(ctx, []*model.Booking{booking}); err != nil {
		return nil, err
	}
	return booking, nil
}

// List returns bookings matching the filter, organizers resolved.
func (s *BookingService) List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if err := s.resolveOrganizers(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpcomingByOrganizer returns the player's bookings dated today or later,
// earliest first. Bookings with unreadable dates are skipped.
func (s *BookingService) UpcomingByOrganizer(ctx context.Context, playerID int64, now time.Time) ([]*model.Booking, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	bookings, err := s.bookings.List(ctx, model.BookingFilter{OrganizerID: &playerID})
	if err != nil {
		return nil, fmt.Errorf("list organizer bookings: %w", err)
	}

	type dated struct {
		booking *model.Booking
		day     time.Time
	}
	upcoming := make([]dated, 0, len(bookings))
	for _, b := range bookings {
		day, ok, err := pricing.UpcomingDay(b.Date, now)
		if err != nil {
			s.logger.Debug("Skipping booking with unreadable date",
				zap.String("booking_id", b.ID.String()),
				zap.String("date", b.Date))
			continue
		}
		if !ok {
			continue
		}
		b.Organizer = player
		upcoming = append(upcoming, dated{booking: b, day: day})
	}

	slices.SortStableFunc(upcoming, func(a, b dated) int {
		if c := a.day.Compare(b.day); c != 0 {
			return c
		}
		return cmp.Compare(a.booking.TeeTime, b.booking.TeeTime)
	})

	out := make([]*model.Booking, 0, len(upcoming))
	for _, d := range upcoming {
		out = append(out, d.booking)
	}
	return out, nil
}

func (s *BookingService) resolveOrganizers(ctx context.Context, bookings []*model.Booking) error {
	cache := make(map[int64]*model.Player)
	for _, b := range bookings {
		if b.OrganizerID == nil {
			continue
		}
		id := *b.OrganizerID

		player, seen := cache[id]
		if !seen {
			p, err := s.players.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("resolve organizer %d: %w", id, err)
			}
			cache[id] = p
			player = p
		}
		b.Organizer = player
	}
	return nil
}

func selectionOf(draft model.BookingDraft) pricing.Selection {
	return pricing.Selection{
		Course:          draft.Location,
		GameTypes:       draft.GameTypes,
		Date:            draft.Date,
		NumberOfPlayers: draft.NumberOfPlayers,
		AddOns:          draft.SelectedAddOns,
	}
}
