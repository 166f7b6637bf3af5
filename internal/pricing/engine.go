package pricing

import (
	"strconv"
	"strings"

	"github.com/teetime/teetime/internal/model"
)

// BookingFee is the platform surcharge added to every booking.
const BookingFee = 3.00

// CourseLookup is the slice of the catalog the engine prices against.
type CourseLookup interface {
	GameTypePrice(courseName, gameType string) (model.Price, bool)
	AddOnPrice(courseName, addOn string) (float64, bool)
	HasCourse(name string) bool
}

// Totals is the result of splitting a booking across the party.
type Totals struct {
	Total     float64 `json:"total"`
	PerPlayer float64 `json:"perPlayer"`
}

// Selection is everything the engine needs to quote a booking.
type Selection struct {
	Course          string
	GameTypes       []string
	Date            string
	NumberOfPlayers int
	AddOns          []string
}

// Engine computes green fees, add-on totals and per-player shares.
// Unknown courses, game types and add-ons price at zero rather than failing.
type Engine struct {
	courses CourseLookup
}

func NewEngine(courses CourseLookup) *Engine {
	return &Engine{courses: courses}
}

// GreenFee is the price of one round of gameType at the course on date.
// The date is only parsed when the game type has weekday/weekend pricing.
func (e *Engine) GreenFee(courseName, gameType, date string) (float64, error) {
	price, ok := e.courses.GameTypePrice(courseName, gameType)
	if !ok {
		return 0, nil
	}

	switch p := price.(type) {
	case model.FixedPrice:
		return float64(p), nil
	case model.VariablePrice:
		weekend, err := IsWeekend(date)
		if err != nil {
			return 0, err
		}
		if weekend {
			return p.Weekend, nil
		}
		return p.Weekday, nil
	default:
		return 0, nil
	}
}

// AddOnsCost sums the prices of the selected add-ons; names the course
// does not offer add nothing.
func (e *Engine) AddOnsCost(courseName string, addOns []string) float64 {
	if !e.courses.HasCourse(courseName) {
		return 0
	}

	var total float64
	for _, name := range addOns {
		price, _ := e.courses.AddOnPrice(courseName, name)
		total += price
	}
	return total
}

// TotalCost adds the booking fee and splits the total evenly across players.
func TotalCost(greenFee, addOnsCost float64, players int) (Totals, error) {
	if players <= 0 {
		return Totals{}, &InvalidPlayerCountError{Value: strconv.Itoa(players)}
	}

	total := greenFee + BookingFee + addOnsCost
	return Totals{
		Total:     total,
		PerPlayer: total / float64(players),
	}, nil
}

// Quote prices a full selection. Only the first game type is charged; a
// selection without one pays the booking fee and add-ons only.
func (e *Engine) Quote(sel Selection) (model.Cost, error) {
	if sel.NumberOfPlayers <= 0 {
		return model.Cost{}, &InvalidPlayerCountError{Value: strconv.Itoa(sel.NumberOfPlayers)}
	}

	var greenFee float64
	if len(sel.GameTypes) > 0 {
		fee, err := e.GreenFee(sel.Course, sel.GameTypes[0], sel.Date)
		if err != nil {
			return model.Cost{}, err
		}
		greenFee = fee
	}

	addOns := e.AddOnsCost(sel.Course, sel.AddOns)

	totals, err := TotalCost(greenFee, addOns, sel.NumberOfPlayers)
	if err != nil {
		return model.Cost{}, err
	}

	return model.Cost{
		GreenFee:   greenFee,
		BookingFee: BookingFee,
		AddOns:     addOns,
		Total:      totals.Total,
		PerPlayer:  totals.PerPlayer,
	}, nil
}

// ParsePlayerCount reads a party size written as text.
func ParsePlayerCount(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, &InvalidPlayerCountError{Value: value}
	}
	return n, nil
}
