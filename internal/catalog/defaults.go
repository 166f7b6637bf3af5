package catalog

import "github.com/teetime/teetime/internal/model"

type fixed = model.FixedPrice

func variable(weekday, weekend float64) model.VariablePrice {
	return model.VariablePrice{Weekday: weekday, Weekend: weekend}
}

// DefaultCourses is the built-in course list.
func DefaultCourses() []model.Course {
	return []model.Course{
		{
			Name:               "Pine View Golf Course",
			AvailableGameTypes: []string{"18-hole", "Executive"},
			GameTypePrices:     map[string]model.Price{"18-hole": fixed(45), "Executive": fixed(36)},
			AddOns: []model.AddOn{
				{Name: "Power Cart 18 Holes", Price: 22},
				{Name: "Power Cart 9 Holes", Price: 15},
				{Name: "Push Cart", Price: 7},
			},
		},
		{
			Name:               "The Marshes Golf Club",
			AvailableGameTypes: []string{"18-hole", "9-hole short course"},
			GameTypePrices:     map[string]model.Price{"18-hole": fixed(125), "9-hole short course": fixed(15)},
			AddOns:             []model.AddOn{{Name: "Cart included in green fee", Price: 0}},
		},
		{
			Name:               "White Sands Golf",
			AvailableGameTypes: []string{"9 Holes", "18 Holes"},
			GameTypePrices: map[string]model.Price{
				"9 Holes":  variable(25.50, 27.50),
				"18 Holes": variable(37.50, 41.50),
			},
			AddOns: []model.AddOn{
				{Name: "Practice & Play", Price: 28.75},
				{Name: "Practice + Chipping Area", Price: 30.00},
			},
		},
		{
			Name:               "Metcalfe Golf Club",
			AvailableGameTypes: []string{"18-hole", "9-hole"},
			GameTypePrices:     map[string]model.Price{"18-hole": fixed(61), "9-hole": fixed(30.50)},
			AddOns:             []model.AddOn{{Name: "Optional Replay", Price: 31}},
		},
		{
			Name:               "Thunderbird Golf Course",
			AvailableGameTypes: []string{"9-hole", "18-hole"},
			GameTypePrices:     map[string]model.Price{"9-hole": fixed(23), "18-hole": fixed(30.80)},
			AddOns:             []model.AddOn{},
		},
		{
			Name:               "Emerald Links",
			AvailableGameTypes: []string{"18-hole", "9-hole"},
			GameTypePrices:     map[string]model.Price{"18-hole": fixed(47), "9-hole": fixed(37)},
			AddOns: []model.AddOn{
				{Name: "Power Cart 18", Price: 30},
				{Name: "Power Cart 9", Price: 25},
				{Name: "Push Cart", Price: 9.95},
			},
		},
		{
			Name:               "Anderson Links",
			AvailableGameTypes: []string{"18-hole"},
			GameTypePrices:     map[string]model.Price{"18-hole": variable(44, 50)},
			AddOns: []model.AddOn{
				{Name: "Power Cart 18", Price: 30},
				{Name: "Power Cart 9", Price: 25},
			},
		},
		{
			Name:               "Cedarhill",
			AvailableGameTypes: []string{"18-hole", "9-hole"},
			GameTypePrices:     map[string]model.Price{"18-hole": fixed(73), "9-hole": fixed(50)},
			AddOns: []model.AddOn{
				{Name: "Power Cart 18 (per seat)", Price: 22},
				{Name: "Power Cart 9 (per seat)", Price: 15},
				{Name: "Push Cart", Price: 7},
			},
		},
		{
			Name:               "Stittsville",
			AvailableGameTypes: []string{"Weekday", "Weekend"},
			GameTypePrices:     map[string]model.Price{"Weekday": fixed(36), "Weekend": fixed(40)},
			AddOns:             []model.AddOn{},
		},
		{
			Name:               "Falcon Ridge",
			AvailableGameTypes: []string{"AM Weekday", "PM", "Twilight"},
			GameTypePrices: map[string]model.Price{
				"AM Weekday": fixed(43.35),
				"PM":         fixed(35.40),
				"Twilight":   fixed(26.55),
			},
			AddOns: []model.AddOn{},
		},
	}
}

// DefaultSkillLevels is the built-in skill scale, from least to most experienced.
func DefaultSkillLevels() []model.SkillLevel {
	return []model.SkillLevel{
		{
			Name:        "Never Played / First-Timer",
			Description: "Never swung a club or only been to the driving range. No course experience.",
			Handicap:    "N/A",
		},
		{
			Name:        "Beginner",
			Description: "Played a few rounds. Learning how to swing, chip, and putt. Not yet scoring consistently.",
			Handicap:    "N/A",
		},
		{
			Name:        "Casual / Recreational Golfer",
			Description: "Play a few times per season. Comfortable on a course but rarely keep score seriously.",
			Handicap:    "~28–36+",
		},
		{
			Name:        "Intermediate",
			Description: "Play semi-regularly. Understand pace, etiquette, and keep score. Some consistency off the tee.",
			Handicap:    "~18–28",
		},
		{
			Name:        "Experienced",
			Description: "Solid swing fundamentals. Manage most holes well, shoot under 100 consistently.",
			Handicap:    "~10–18",
		},
		{
			Name:        "Advanced / Competitive",
			Description: "Play regularly, break 85 often, manage course strategy. Comfortable in amateur events.",
			Handicap:    "~4–10",
		},
		{
			Name:        "Scratch / Tournament-Level",
			Description: "Consistently shoot par or better. May compete in high-level amateur or pro qualifiers.",
			Handicap:    "0 or better (Scratch / + Index)",
		},
	}
}

// Default builds the catalog from the built-in data.
func Default() *Catalog {
	c, err := New(DefaultCourses(), DefaultSkillLevels())
	if err != nil {
		panic("invalid built-in catalog: " + err.Error())
	}
	return c
}
