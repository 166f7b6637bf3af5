package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/teetime/teetime/internal/model"
)

var (
	ErrDuplicateCourse     = errors.New("duplicate course")
	ErrMissingPrice        = errors.New("game type has no price")
	ErrUnlistedPrice       = errors.New("price for game type not offered by course")
	ErrDuplicateAddOn      = errors.New("duplicate add-on")
	ErrGameTypeNotOffered  = errors.New("game type not offered by course")
	ErrAddOnNotOffered     = errors.New("add-on not offered by course")
	ErrUnknownCourse       = errors.New("unknown course")
	ErrDuplicateSkillLevel = errors.New("duplicate skill level")
)

// Catalog is the read-only directory of courses and skill levels.
// It is never mutated after New returns, so it can be shared freely.
type Catalog struct {
	courses     []model.Course
	byName      map[string]int
	skillLevels []model.SkillLevel
	skillByName map[string]int
}

// New validates the data and builds a Catalog. Every game type a course offers
// must have exactly one price, and add-on names must be unique per course.
func New(courses []model.Course, skillLevels []model.SkillLevel) (*Catalog, error) {
	c := &Catalog{
		courses:     make([]model.Course, 0, len(courses)),
		byName:      make(map[string]int, len(courses)),
		skillLevels: slices.Clone(skillLevels),
		skillByName: make(map[string]int, len(skillLevels)),
	}

	for _, course := range courses {
		if _, exists := c.byName[course.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCourse, course.Name)
		}
		if err := validateCourse(course); err != nil {
			return nil, err
		}
		c.byName[course.Name] = len(c.courses)
		c.courses = append(c.courses, cloneCourse(course))
	}

	for i, level := range c.skillLevels {
		if _, exists := c.skillByName[level.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkillLevel, level.Name)
		}
		c.skillByName[level.Name] = i
	}

	return c, nil
}

func validateCourse(course model.Course) error {
	for _, gameType := range course.AvailableGameTypes {
		if _, ok := course.GameTypePrices[gameType]; !ok {
			return fmt.Errorf("course %q: %w: %q", course.Name, ErrMissingPrice, gameType)
		}
	}
	for gameType := range course.GameTypePrices {
		if !slices.Contains(course.AvailableGameTypes, gameType) {
			return fmt.Errorf("course %q: %w: %q", course.Name, ErrUnlistedPrice, gameType)
		}
	}

	seen := make(map[string]struct{}, len(course.AddOns))
	for _, addOn := range course.AddOns {
		if _, dup := seen[addOn.Name]; dup {
			return fmt.Errorf("course %q: %w: %q", course.Name, ErrDuplicateAddOn, addOn.Name)
		}
		seen[addOn.Name] = struct{}{}
	}

	return nil
}

func cloneCourse(course model.Course) model.Course {
	prices := make(map[string]model.Price, len(course.GameTypePrices))
	for k, v := range course.GameTypePrices {
		prices[k] = v
	}
	return model.Course{
		Name:               course.Name,
		AvailableGameTypes: slices.Clone(course.AvailableGameTypes),
		GameTypePrices:     prices,
		AddOns:             slices.Clone(course.AddOns),
	}
}

// Course looks up a course by name.
func (c *Catalog) Course(name string) (model.Course, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Course{}, false
	}
	return cloneCourse(c.courses[i]), true
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []model.Course {
	out := make([]model.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, cloneCourse(course))
	}
	return out
}

// GameTypePrice returns the price of a game type at a course.
func (c *Catalog) GameTypePrice(courseName, gameType string) (model.Price, bool) {
	i, ok := c.byName[courseName]
	if !ok {
		return nil, false
	}
	price, ok := c.courses[i].GameTypePrices[gameType]
	return price, ok
}

// AddOnPrice returns the price of a named add-on at a course.
func (c *Catalog) AddOnPrice(courseName, addOn string) (float64, bool) {
	i, ok := c.byName[courseName]
	if !ok {
		return 0, false
	}
	for _, a := range c.courses[i].AddOns {
		if a.Name == addOn {
			return a.Price, true
		}
	}
	return 0, false
}

// HasCourse reports whether the course exists.
func (c *Catalog) HasCourse(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// SkillLevels returns all skill levels in display order.
func (c *Catalog) SkillLevels() []model.SkillLevel {
	return slices.Clone(c.skillLevels)
}

// SkillLevel looks up a skill level by name.
func (c *Catalog) SkillLevel(name string) (model.SkillLevel, bool) {
	i, ok := c.skillByName[name]
	if !ok {
		return model.SkillLevel{}, false
	}
	return c.skillLevels[i], true
}
