package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/pricing"
)

const (
	saturday = "2025-05-24"
	sunday   = "2025-05-25"
	tuesday  = "2025-05-20"
)

func newEngine() (*pricing.Engine, *catalog.Catalog) {
	c := catalog.Default()
	return pricing.NewEngine(c), c
}

func TestGreenFeeFollowsWeekendForVariablePrices(t *testing.T) {
	engine, c := newEngine()

	checked := 0
	for _, course := range c.Courses() {
		for gameType, price := range course.GameTypePrices {
			variable, ok := price.(model.VariablePrice)
			if !ok {
				continue
			}
			checked++

			for _, date := range []string{saturday, sunday} {
				fee, err := engine.GreenFee(course.Name, gameType, date)
				require.NoError(t, err)
				assert.Equal(t, variable.Weekend, fee, "%s %s on %s", course.Name, gameType, date)
			}

			fee, err := engine.GreenFee(course.Name, gameType, tuesday)
			require.NoError(t, err)
			assert.Equal(t, variable.Weekday, fee, "%s %s on %s", course.Name, gameType, tuesday)
		}
	}
	assert.Equal(t, 3, checked)
}

func TestGreenFeeFixedPriceIgnoresDate(t *testing.T) {
	engine, c := newEngine()

	for _, course := range c.Courses() {
		for gameType, price := range course.GameTypePrices {
			fixed, ok := price.(model.FixedPrice)
			if !ok {
				continue
			}
			for _, date := range []string{saturday, tuesday, "", "not a date"} {
				fee, err := engine.GreenFee(course.Name, gameType, date)
				require.NoError(t, err)
				assert.Equal(t, float64(fixed), fee)
			}
		}
	}
}

func TestGreenFeeScenarios(t *testing.T) {
	engine, _ := newEngine()

	tests := []struct {
		name     string
		course   string
		gameType string
		date     string
		expected float64
	}{
		{"fixed 18-hole at Pine View", "Pine View Golf Course", "18-hole", tuesday, 45},
		{"White Sands weekend", "White Sands Golf", "18 Holes", saturday, 41.50},
		{"White Sands weekday", "White Sands Golf", "18 Holes", tuesday, 37.50},
		{"Anderson Links weekend", "Anderson Links", "18-hole", sunday, 50},
		{"unknown course", "Nonexistent Course", "18-hole", tuesday, 0},
		{"unknown game type", "Pine View Golf Course", "9 Holes", tuesday, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := engine.GreenFee(tt.course, tt.gameType, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fee)
		})
	}
}

func TestGreenFeeInvalidDateForVariablePrice(t *testing.T) {
	engine, _ := newEngine()

	_, err := engine.GreenFee("White Sands Golf", "9 Holes", "24/05/2025")

	var dateErr *pricing.InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "24/05/2025", dateErr.Value)
}

func TestAddOnsCost(t *testing.T) {
	engine, _ := newEngine()

	assert.Equal(t, 22.0, engine.AddOnsCost("Pine View Golf Course", []string{"Power Cart 18 Holes"}))
	assert.Equal(t, 0.0, engine.AddOnsCost("Nonexistent Course", []string{"Power Cart 18 Holes"}))
	assert.Equal(t, 7.0, engine.AddOnsCost("Pine View Golf Course", []string{"Push Cart", "Hovercraft"}))
	assert.Equal(t, 0.0, engine.AddOnsCost("Pine View Golf Course", nil))
	assert.Equal(t, 0.0, engine.AddOnsCost("The Marshes Golf Club", []string{"Cart included in green fee"}))
}

func TestAddOnsCostIsOrderIndependentAndAdditive(t *testing.T) {
	engine, c := newEngine()

	for _, course := range c.Courses() {
		addOns := c.AddOnsByLocation(course.Name)
		names := make([]string, 0, len(addOns))
		var expected float64
		for _, a := range addOns {
			names = append(names, a.Name)
			expected += a.Price
		}

		reversed := make([]string, len(names))
		for i, n := range names {
			reversed[len(names)-1-i] = n
		}

		full := engine.AddOnsCost(course.Name, names)
		assert.InDelta(t, expected, full, 1e-9, course.Name)
		assert.InDelta(t, full, engine.AddOnsCost(course.Name, reversed), 1e-9, course.Name)

		for split := 0; split <= len(names); split++ {
			subset := engine.AddOnsCost(course.Name, names[:split])
			complement := engine.AddOnsCost(course.Name, names[split:])
			assert.InDelta(t, full, subset+complement, 1e-9, course.Name)
		}
	}
}

func TestTotalCost(t *testing.T) {
	totals, err := pricing.TotalCost(45, 22, 4)
	require.NoError(t, err)
	assert.Equal(t, pricing.Totals{Total: 70, PerPlayer: 17.5}, totals)

	for _, n := range []int{1, 2, 3, 4, 7} {
		totals, err := pricing.TotalCost(25.50, 28.75, n)
		require.NoError(t, err)
		assert.InDelta(t, 25.50+28.75+pricing.BookingFee, totals.Total, 1e-9)
		assert.InDelta(t, totals.Total, totals.PerPlayer*float64(n), 1e-9)
	}
}

func TestTotalCostRejectsNonPositivePlayers(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := pricing.TotalCost(45, 22, n)

		var countErr *pricing.InvalidPlayerCountError
		assert.ErrorAs(t, err, &countErr)
	}
}

func TestQuote(t *testing.T) {
	engine, _ := newEngine()

	cost, err := engine.Quote(pricing.Selection{
		Course:          "Pine View Golf Course",
		GameTypes:       []string{"18-hole"},
		Date:            tuesday,
		NumberOfPlayers: 4,
		AddOns:          []string{"Power Cart 18 Holes"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Cost{GreenFee: 45, BookingFee: 3, AddOns: 22, Total: 70, PerPlayer: 17.5}, cost)
}

func TestQuoteWithoutGameTypeChargesFeeOnly(t *testing.T) {
	engine, _ := newEngine()

	cost, err := engine.Quote(pricing.Selection{Course: "Pine View Golf Course", NumberOfPlayers: 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost.GreenFee)
	assert.Equal(t, 3.0, cost.Total)
	assert.Equal(t, 1.0, cost.PerPlayer)
}

func TestQuoteErrors(t *testing.T) {
	engine, _ := newEngine()

	_, err := engine.Quote(pricing.Selection{Course: "Pine View Golf Course", GameTypes: []string{"18-hole"}})
	var countErr *pricing.InvalidPlayerCountError
	assert.ErrorAs(t, err, &countErr)

	_, err = engine.Quote(pricing.Selection{
		Course:          "White Sands Golf",
		GameTypes:       []string{"18 Holes"},
		Date:            "someday",
		NumberOfPlayers: 2,
	})
	var dateErr *pricing.InvalidDateError
	assert.ErrorAs(t, err, &dateErr)
}

func TestQuoteUnknownCourseIsZeroCost(t *testing.T) {
	engine, _ := newEngine()

	cost, err := engine.Quote(pricing.Selection{
		Course:          "Nonexistent Course",
		GameTypes:       []string{"18-hole"},
		Date:            tuesday,
		NumberOfPlayers: 1,
		AddOns:          []string{"Push Cart"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Cost{BookingFee: 3, Total: 3, PerPlayer: 3}, cost)
}

func TestParsePlayerCount(t *testing.T) {
	n, err := pricing.ParsePlayerCount("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = pricing.ParsePlayerCount(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, bad := range []string{"0", "-3", "four", "", "2.5"} {
		_, err := pricing.ParsePlayerCount(bad)
		var countErr *pricing.InvalidPlayerCountError
		assert.ErrorAs(t, err, &countErr, bad)
	}
}
