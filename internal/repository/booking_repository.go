package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/repository/base"
)

const bookingColumns = `id, title, skill_level, location, game_types, date, tee_time, number_of_players, details, selected_add_ons, cost, organizer_id, created_at`

// BookingRepository stores tee times in the games table.
type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a booking whose ID the caller already assigned.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO games (id, title, skill_level, location, game_types, date, tee_time, number_of_players, details, selected_add_ons, cost, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	var cost []byte
	if booking.Cost != nil {
		encoded, err := json.Marshal(booking.Cost)
		if err != nil {
			return fmt.Errorf("encode booking cost: %w", err)
		}
		cost = encoded
	}

	err := r.QueryRow(
		ctx, query,
		booking.ID,
		booking.Title,
		booking.SkillLevel,
		booking.Location,
		nonNil(booking.GameTypes),
		booking.Date,
		booking.TeeTime,
		booking.NumberOfPlayers,
		booking.Details,
		nonNil(booking.SelectedAddOns),
		cost,
		booking.OrganizerID,
	).Scan(&booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByID returns nil, nil when the booking does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM games WHERE id = $1`

	booking, err := scanBooking(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// List returns bookings in creation order.
func (r *BookingRepository) List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	var where base.Where
	if filter.SkillLevel != "" {
		where.Add("skill_level = ?", filter.SkillLevel)
	}
	if filter.Location != "" {
		where.Add("location = ?", filter.Location)
	}
	if filter.OrganizerID != nil {
		where.Add("organizer_id = ?", *filter.OrganizerID)
	}

	query := `SELECT ` + bookingColumns + ` FROM games ` + where.SQL() + ` ORDER BY created_at, id`

	rows, err := r.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var (
		b    model.Booking
		cost []byte
	)
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.SkillLevel,
		&b.Location,
		&b.GameTypes,
		&b.Date,
		&b.TeeTime,
		&b.NumberOfPlayers,
		&b.Details,
		&b.SelectedAddOns,
		&cost,
		&b.OrganizerID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cost != nil {
		var c model.Cost
		if err := json.Unmarshal(cost, &c); err != nil {
			return nil, fmt.Errorf("decode booking cost: %w", err)
		}
		b.Cost = &c
	}

	return &b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
