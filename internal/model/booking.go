package model

import (
	"time"

	"github.com/google/uuid"
)

// Cost is computed once when a booking is created and never recomputed.
type Cost struct {
	GreenFee   float64 `json:"greenFee"`
	BookingFee float64 `json:"bookingFee"`
	AddOns     float64 `json:"addOns"`
	Total      float64 `json:"total"`
	PerPlayer  float64 `json:"perPlayer"`
}

// BookingDraft is what a caller submits to create a tee time.
type BookingDraft struct {
	Title           string   `json:"title"`
	SkillLevel      string   `json:"skillLevel"`
	Location        string   `json:"location"`
	GameTypes       []string `json:"gameTypes"`
	Date            string   `json:"date"`    // YYYY-MM-DD
	TeeTime         string   `json:"teeTime"` // HH:MM
	NumberOfPlayers int      `json:"numberOfPlayers"`
	Details         string   `json:"details"`
	SelectedAddOns  []string `json:"selectedAddOns"`
	OrganizerID     *int64   `json:"organizerId,omitempty"`
}

// Booking is a stored tee time.
type Booking struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	SkillLevel      string    `json:"skillLevel"`
	Location        string    `json:"location"`
	GameTypes       []string  `json:"gameTypes"`
	Date            string    `json:"date"`
	TeeTime         string    `json:"teeTime"`
	NumberOfPlayers int       `json:"numberOfPlayers"`
	Details         string    `json:"details"`
	SelectedAddOns  []string  `json:"selectedAddOns"`
	Cost            *Cost     `json:"cost,omitempty"`
	OrganizerID     *int64    `json:"organizerId,omitempty"` // weak reference to Player.ID
	CreatedAt       time.Time `json:"createdAt"`

	// Resolved at read time, not stored
	Organizer *Player `json:"organizer,omitempty"`
}

// GameType returns the selected game type; bookings carry exactly one in practice.
func (b *Booking) GameType() string {
	if len(b.GameTypes) == 0 {
		return ""
	}
	return b.GameTypes[0]
}

// BookingFilter narrows a listing; empty fields match everything.
type BookingFilter struct {
	SkillLevel  string
	Location    string
	OrganizerID *int64
}

// Matches reports whether b passes the filter.
func (f BookingFilter) Matches(b *Booking) bool {
	if f.SkillLevel != "" && b.SkillLevel != f.SkillLevel {
		return false
	}
	if f.Location != "" && b.Location != f.Location {
		return false
	}
	if f.OrganizerID != nil && (b.OrganizerID == nil || *b.OrganizerID != *f.OrganizerID) {
		return false
	}
	return true
}
