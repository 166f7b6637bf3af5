package model

import "time"

// Player is a golfer profile; bookings reference it as their organizer.
type Player struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SkillLevel      string    `json:"skillLevel"`
	Handicap        string    `json:"handicap,omitempty"`
	Age             string    `json:"age,omitempty"`
	Location        string    `json:"location,omitempty"`
	HomeCourse      string    `json:"homeCourse,omitempty"`
	PersonalBest    *int      `json:"personalBestScore,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	FavoriteCourses []string  `json:"favoriteCourses"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PlayerSort string

const (
	PlayerSortName  PlayerSort = "name"
	PlayerSortSkill PlayerSort = "skill"
	PlayerSortScore PlayerSort = "score"
)

// PlayerFilter narrows the player directory.
type PlayerFilter struct {
	SkillLevel string
	SortBy     PlayerSort
}
