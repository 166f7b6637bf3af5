package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/teetime/teetime/internal/model"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players []model.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{}
}

func (r *PlayerRepository) Create(_ context.Context, player *model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	player.ID = r.nextID
	player.CreatedAt = time.Now().UTC()
	if player.FavoriteCourses == nil {
		player.FavoriteCourses = []string{}
	}

	r.players = append(r.players, clonePlayer(*player))
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (*model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.ID == id {
			out := clonePlayer(p)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *PlayerRepository) List(_ context.Context, skillLevel string) ([]*model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Player, 0, len(r.players))
	for _, p := range r.players {
		if skillLevel != "" && p.SkillLevel != skillLevel {
			continue
		}
		cp := clonePlayer(p)
		out = append(out, &cp)
	}
	return out, nil
}

func clonePlayer(p model.Player) model.Player {
	p.FavoriteCourses = slices.Clone(p.FavoriteCourses)
	if p.PersonalBest != nil {
		score := *p.PersonalBest
		p.PersonalBest = &score
	}
	return p
}
