package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teetime/teetime/internal/model"
)

// GET /api/players?skillLevel=&sort=name|skill|score
func (h *Handler) ListPlayers(c *gin.Context) {
	filter := model.PlayerFilter{
		SkillLevel: queryFilter(c, "skillLevel"),
		SortBy:     model.PlayerSort(c.Query("sort")),
	}

	players, err := h.players.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GET /api/players/:id
func (h *Handler) GetPlayer(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	player, err := h.players.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// POST /api/players
func (h *Handler) CreatePlayer(c *gin.Context) {
	var in playerRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, &badRequest{err: err})
		return
	}

	player := in.player()
	if err := h.players.Create(c.Request.Context(), player); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}
