package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/courses
func (h *Handler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Courses())
}

// GET /api/courses/:name/game-types
// Unknown courses answer with an empty list, same as the resolver.
func (h *Handler) CourseGameTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.GameTypesByLocation(c.Param("name")))
}

// GET /api/courses/:name/add-ons
func (h *Handler) CourseAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.AddOnsByLocation(c.Param("name")))
}

// GET /api/skill-levels
func (h *Handler) ListSkillLevels(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.SkillLevels())
}
