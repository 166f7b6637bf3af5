package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// POST /api/signup
func (h *Handler) Signup(c *gin.Context) {
	var in credentialsRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, &badRequest{err: err})
		return
	}

	user, err := h.users.Signup(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var in credentialsRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, &badRequest{err: err})
		return
	}
	if in.Username == "" || in.Password == "" {
		h.writeError(c, errMissingCredentials)
		return
	}

	user, err := h.users.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// GET /api/profile/:id
func (h *Handler) Profile(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

func int64Param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
