package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teetime/teetime/internal/formatting"
	"github.com/teetime/teetime/internal/model"
)

// POST /api/quote
func (h *Handler) Quote(c *gin.Context) {
	var in quoteRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, &badRequest{err: err})
		return
	}

	quote, err := h.bookings.Quote(model.BookingDraft{
		Location:        in.Location,
		GameTypes:       in.GameTypes,
		Date:            in.Date,
		NumberOfPlayers: int(in.NumberOfPlayers),
		SelectedAddOns:  in.SelectedAddOns,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quoteResponse{
		Cost:     quote.Cost,
		Progress: quote.Progress,
		Formatted: map[string]string{
			"greenFee":   formatting.FormatPrice(quote.Cost.GreenFee),
			"bookingFee": formatting.FormatPrice(quote.Cost.BookingFee),
			"addOns":     formatting.FormatPrice(quote.Cost.AddOns),
			"total":      formatting.FormatPrice(quote.Cost.Total),
			"perPlayer":  formatting.FormatPrice(quote.Cost.PerPlayer),
			"progress":   formatting.FormatPercent(quote.Progress),
		},
	})
}

// GET /api/games?skillLevel=&course=
func (h *Handler) ListGames(c *gin.Context) {
	filter := model.BookingFilter{
		SkillLevel: queryFilter(c, "skillLevel"),
		Location:   queryFilter(c, "course"),
	}

	games, err := h.bookings.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GET /api/games/:id
func (h *Handler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeError(c, errInvalidID)
		return
	}

	game, err := h.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// POST /api/games[?strict=true]
// In strict mode the game types and add-ons must be offered by the course.
func (h *Handler) CreateGame(c *gin.Context) {
	var in gameRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, &badRequest{err: err})
		return
	}
	draft := in.draft()

	if strict, _ := strconv.ParseBool(c.Query("strict")); strict {
		if err := h.bookings.ValidateSelection(draft); err != nil {
			h.writeError(c, err)
			return
		}
	}

	game, err := h.bookings.CreateBooking(c.Request.Context(), draft)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GET /api/players/:id/games
func (h *Handler) PlayerGames(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	games, err := h.bookings.UpcomingByOrganizer(c.Request.Context(), id, h.now())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// queryFilter treats "all" like an absent filter.
func queryFilter(c *gin.Context, key string) string {
	v := c.Query(key)
	if v == "all" {
		return ""
	}
	return v
}
