package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/repository/base"
)

const playerColumns = `id, name, skill_level, handicap, age, location, home_course, personal_best, bio, favorite_courses, created_at`

type PlayerRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewPlayerRepository(pool *pgxpool.Pool, logger *zap.Logger) *PlayerRepository {
	return &PlayerRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create inserts a player profile
func (r *PlayerRepository) Create(ctx context.Context, player *model.Player) error {
	query := `
		INSERT INTO players (name, skill_level, handicap, age, location, home_course, personal_best, bio, favorite_courses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	favorites := player.FavoriteCourses
	if favorites == nil {
		favorites = []string{}
	}

	err := r.QueryRow(
		ctx, query,
		player.Name,
		player.SkillLevel,
		player.Handicap,
		player.Age,
		player.Location,
		player.HomeCourse,
		player.PersonalBest,
		player.Bio,
		favorites,
	).Scan(&player.ID, &player.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert player",
			zap.String("name", player.Name),
			zap.Error(err))
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

// GetByID returns nil, nil when the player does not exist.
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*model.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player by id: %w", err)
	}

	return player, nil
}

// List returns players in id order, optionally restricted to one skill level.
func (r *PlayerRepository) List(ctx context.Context, skillLevel string) ([]*model.Player, error) {
	var where base.Where
	if skillLevel != "" {
		where.Add("skill_level = ?", skillLevel)
	}

	query := `SELECT ` + playerColumns + ` FROM players ` + where.SQL() + ` ORDER BY id`

	rows, err := r.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make([]*model.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	return players, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SkillLevel,
		&p.Handicap,
		&p.Age,
		&p.Location,
		&p.HomeCourse,
		&p.PersonalBest,
		&p.Bio,
		&p.FavoriteCourses,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
