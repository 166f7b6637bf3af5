package catalog

import (
	"fmt"
	"slices"

	"github.com/teetime/teetime/internal/model"
)

// GameTypesByLocation returns the game types a course offers, in catalog order.
// Unknown courses yield an empty slice.
func (c *Catalog) GameTypesByLocation(courseName string) []string {
	i, ok := c.byName[courseName]
	if !ok {
		return []string{}
	}
	return slices.Clone(c.courses[i].AvailableGameTypes)
}

// AddOnsByLocation returns the add-ons a course offers, in catalog order.
// Unknown courses yield an empty slice.
func (c *Catalog) AddOnsByLocation(courseName string) []model.AddOn {
	i, ok := c.byName[courseName]
	if !ok {
		return []model.AddOn{}
	}
	return slices.Clone(c.courses[i].AddOns)
}

// Validate checks a selection against what the course offers. The pricing
// engine does not call this; callers that want strict input use it up front.
func (c *Catalog) Validate(courseName string, gameTypes, addOns []string) error {
	i, ok := c.byName[courseName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCourse, courseName)
	}
	course := c.courses[i]

	for _, gameType := range gameTypes {
		if !slices.Contains(course.AvailableGameTypes, gameType) {
			return fmt.Errorf("%w: %q at %q", ErrGameTypeNotOffered, gameType, courseName)
		}
	}

	for _, name := range addOns {
		found := slices.ContainsFunc(course.AddOns, func(a model.AddOn) bool { return a.Name == name })
		if !found {
			return fmt.Errorf("%w: %q at %q", ErrAddOnNotOffered, name, courseName)
		}
	}

	return nil
}
