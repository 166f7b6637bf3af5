package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/service"
)

type demoGame struct {
	draft     model.BookingDraft
	organizer int // index into demoOrganizers
}

func score(v int) *int { return &v }

var demoOrganizers = []model.Player{
	{
		Name:            "John Doe",
		SkillLevel:      "Intermediate",
		Age:             "30-40",
		Location:        "Pine Valley",
		HomeCourse:      "Pine View Golf Course",
		PersonalBest:    score(82),
		Bio:             "I've been playing golf for about 5 years now. I enjoy weekend rounds with friends and am always looking to improve my game.",
		FavoriteCourses: []string{"Pine View Golf Course", "White Sands Golf"},
	},
	{
		Name:            "Jane Smith",
		SkillLevel:      "Beginner",
		Age:             "20-30",
		Location:        "Riverside",
		HomeCourse:      "White Sands Golf",
		PersonalBest:    score(95),
		Bio:             "New to golf but loving it! Looking for patient playing partners to learn with.",
		FavoriteCourses: []string{"White Sands Golf", "Stittsville"},
	},
	{
		Name:            "Michael Johnson",
		SkillLevel:      "Advanced / Competitive",
		Age:             "40-50",
		Location:        "Greenwood",
		HomeCourse:      "The Marshes Golf Club",
		PersonalBest:    score(75),
		Bio:             "Competitive golfer with 10+ years experience. Looking for challenging games with skilled players.",
		FavoriteCourses: []string{"The Marshes Golf Club", "Cedarhill"},
	},
	{
		Name:            "Emily Wilson",
		SkillLevel:      "Experienced",
		Age:             "30-40",
		Location:        "Lakeside",
		HomeCourse:      "Falcon Ridge",
		PersonalBest:    score(78),
		Bio:             "Playing for 8 years. Enjoy competitive yet friendly rounds. Always up for an evening game after work.",
		FavoriteCourses: []string{"Falcon Ridge", "Emerald Links"},
	},
	{
		Name:            "Robert Brown",
		SkillLevel:      "Casual / Recreational Golfer",
		Age:             "50-60",
		Location:        "Meadowvale",
		HomeCourse:      "Stittsville",
		PersonalBest:    score(88),
		Bio:             "Weekend golfer who plays for fun and relaxation. Not too serious about scores but enjoy the game.",
		FavoriteCourses: []string{"Stittsville", "Anderson Links"},
	},
}

var demoGames = []demoGame{
	{organizer: 0, draft: model.BookingDraft{
		Title:           "Morning Round at Pine View",
		SkillLevel:      "Intermediate",
		Location:        "Pine View Golf Course",
		GameTypes:       []string{"18-hole"},
		Date:            "2025-05-20",
		TeeTime:         "08:00",
		NumberOfPlayers: 4,
		Details:         "Looking for a relaxed round with some friendly competition.",
		SelectedAddOns:  []string{"Power Cart 18 Holes"},
	}},
	{organizer: 1, draft: model.BookingDraft{
		Title:           "Quick 9 at White Sands",
		SkillLevel:      "Beginner",
		Location:        "White Sands Golf",
		GameTypes:       []string{"9 Holes"},
		Date:            "2025-05-18",
		TeeTime:         "16:30",
		NumberOfPlayers: 3,
		Details:         "Perfect for beginners, no pressure!",
		SelectedAddOns:  []string{"Practice & Play"},
	}},
	{organizer: 2, draft: model.BookingDraft{
		Title:           "Full 18 at Marshes",
		SkillLevel:      "Advanced / Competitive",
		Location:        "The Marshes Golf Club",
		GameTypes:       []string{"18-hole"},
		Date:            "2025-05-25",
		TeeTime:         "07:15",
		NumberOfPlayers: 3,
		Details:         "Looking for skilled players for a competitive round.",
	}},
	{organizer: 3, draft: model.BookingDraft{
		Title:           "After-work Golf at Falcon Ridge",
		SkillLevel:      "Experienced",
		Location:        "Falcon Ridge",
		GameTypes:       []string{"PM"},
		Date:            "2025-05-22",
		TeeTime:         "17:00",
		NumberOfPlayers: 2,
		Details:         "Quick evening round.",
	}},
	{organizer: 4, draft: model.BookingDraft{
		Title:           "Casual Weekend Round",
		SkillLevel:      "Casual / Recreational Golfer",
		Location:        "Stittsville",
		GameTypes:       []string{"Weekend"},
		Date:            "2025-05-24",
		TeeTime:         "10:45",
		NumberOfPlayers: 4,
		Details:         "Relaxed weekend golf with no pressure.",
	}},
}

// SeedDemoData creates the sample organizers and their tee times through the
// services, so the stored costs come from the pricing engine.
func SeedDemoData(ctx context.Context, players *service.PlayerService, bookings *service.BookingService, logger *zap.Logger) error {
	ids := make([]int64, len(demoOrganizers))
	for i := range demoOrganizers {
		p := demoOrganizers[i]
		p.FavoriteCourses = append([]string(nil), p.FavoriteCourses...)
		if err := players.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed organizer %q: %w", p.Name, err)
		}
		ids[i] = p.ID
	}

	for _, g := range demoGames {
		draft := g.draft
		organizerID := ids[g.organizer]
		draft.OrganizerID = &organizerID
		if _, err := bookings.CreateBooking(ctx, draft); err != nil {
			return fmt.Errorf("seed game %q: %w", draft.Title, err)
		}
	}

	logger.Info("Demo data seeded",
		zap.Int("players", len(demoOrganizers)),
		zap.Int("games", len(demoGames)))
	return nil
}
