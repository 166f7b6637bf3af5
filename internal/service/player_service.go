package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/model"
)

type PlayerService struct {
	players PlayerRepository
	logger  *zap.Logger
}

func NewPlayerService(players PlayerRepository, logger *zap.Logger) *PlayerService {
	return &PlayerService{
		players: players,
		logger:  logger,
	}
}

// Create adds a profile to the player directory.
func (s *PlayerService) Create(ctx context.Context, player *model.Player) error {
	player.Name = strings.TrimSpace(player.Name)
	if player.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if player.SkillLevel == "" {
		return fmt.Errorf("%w: skill level is required", ErrInvalidPlayer)
	}
	if player.PersonalBest != nil && *player.PersonalBest <= 0 {
		return fmt.Errorf("%w: personal best must be positive", ErrInvalidPlayer)
	}

	if err := s.players.Create(ctx, player); err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	s.logger.Info("Player created",
		zap.Int64("player_id", player.ID),
		zap.String("name", player.Name),
		zap.String("skill_level", player.SkillLevel),
	)

	return nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (*model.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// List filters the directory by skill level and sorts it. Sorting by score
// puts the lowest personal best first and players without one last.
func (s *PlayerService) List(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error) {
	var compare func(a, b *model.Player) int
	switch filter.SortBy {
	case "", model.PlayerSortName:
		compare = byName
	case model.PlayerSortSkill:
		compare = func(a, b *model.Player) int {
			if c := cmp.Compare(a.SkillLevel, b.SkillLevel); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case model.PlayerSortScore:
		compare = func(a, b *model.Player) int {
			switch {
			case a.PersonalBest == nil && b.PersonalBest == nil:
				return byName(a, b)
			case a.PersonalBest == nil:
				return 1
			case b.PersonalBest == nil:
				return -1
			}
			if c := cmp.Compare(*a.PersonalBest, *b.PersonalBest); c != 0 {
				return c
			}
			return byName(a, b)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, filter.SortBy)
	}

	players, err := s.players.List(ctx, filter.SkillLevel)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	slices.SortStableFunc(players, compare)
	return players, nil
}

func byName(a, b *model.Player) int {
	return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
