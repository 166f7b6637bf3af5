package rest

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/pricing"
)

// playerCount accepts a party size as a JSON number or a numeric string.
type playerCount int

func (p *playerCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := pricing.ParsePlayerCount(s)
		if err != nil {
			return err
		}
		*p = playerCount(n)
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return &pricing.InvalidPlayerCountError{Value: string(data)}
	}
	*p = playerCount(n)
	return nil
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type gameRequest struct {
	Title           string      `json:"title" binding:"required"`
	SkillLevel      string      `json:"skillLevel" binding:"required"`
	Location        string      `json:"location" binding:"required"`
	GameTypes       []string    `json:"gameTypes"`
	Date            string      `json:"date"`
	TeeTime         string      `json:"teeTime"`
	NumberOfPlayers playerCount `json:"numberOfPlayers"`
	Details         string      `json:"details"`
	SelectedAddOns  []string    `json:"selectedAddOns"`
	OrganizerID     *int64      `json:"organizerId"`
}

func (r gameRequest) draft() model.BookingDraft {
	return model.BookingDraft{
		Title:           r.Title,
		SkillLevel:      r.SkillLevel,
		Location:        r.Location,
		GameTypes:       r.GameTypes,
		Date:            r.Date,
		TeeTime:         r.TeeTime,
		NumberOfPlayers: int(r.NumberOfPlayers),
		Details:         r.Details,
		SelectedAddOns:  r.SelectedAddOns,
		OrganizerID:     r.OrganizerID,
	}
}

type quoteRequest struct {
	Location        string      `json:"location"`
	GameTypes       []string    `json:"gameTypes"`
	Date            string      `json:"date"`
	NumberOfPlayers playerCount `json:"numberOfPlayers"`
	SelectedAddOns  []string    `json:"selectedAddOns"`
}

type quoteResponse struct {
	Cost      model.Cost        `json:"cost"`
	Progress  float64           `json:"progress"`
	Formatted map[string]string `json:"formatted"`
}

type playerRequest struct {
	Name            string   `json:"name" binding:"required"`
	SkillLevel      string   `json:"skillLevel" binding:"required"`
	Handicap        string   `json:"handicap"`
	Age             string   `json:"age"`
	Location        string   `json:"location"`
	HomeCourse      string   `json:"homeCourse"`
	PersonalBest    *int     `json:"personalBestScore"`
	Bio             string   `json:"bio"`
	FavoriteCourses []string `json:"favoriteCourses"`
}

func (r playerRequest) player() *model.Player {
	return &model.Player{
		Name:            r.Name,
		SkillLevel:      r.SkillLevel,
		Handicap:        r.Handicap,
		Age:             r.Age,
		Location:        r.Location,
		HomeCourse:      r.HomeCourse,
		PersonalBest:    r.PersonalBest,
		Bio:             r.Bio,
		FavoriteCourses: r.FavoriteCourses,
	}
}
