package model

import "encoding/json"

// Price is the green fee of a game type: either FixedPrice or VariablePrice.
// The interface is closed; only this package implements it.
type Price interface {
	isPrice()
}

// FixedPrice is charged regardless of the day of play.
type FixedPrice float64

func (FixedPrice) isPrice() {}

// VariablePrice depends on whether the round is played on a weekend.
type VariablePrice struct {
	Weekday float64 `json:"weekday"`
	Weekend float64 `json:"weekend"`
}

func (VariablePrice) isPrice() {}

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Course is an immutable catalog entry.
type Course struct {
	Name               string
	AvailableGameTypes []string
	GameTypePrices     map[string]Price
	AddOns             []AddOn
}

type gameTypePriceJSON struct {
	Name  string `json:"name"`
	Price any    `json:"price"`
}

type coursePricingJSON struct {
	GameTypes []gameTypePriceJSON `json:"gameTypes"`
	AddOns    []AddOn             `json:"addOns"`
}

type courseJSON struct {
	Name               string            `json:"name"`
	AvailableGameTypes []string          `json:"availableGameTypes"`
	Pricing            coursePricingJSON `json:"pricing"`
}

// MarshalJSON renders prices in game type order: fixed prices as numbers,
// variable prices as {"weekday", "weekend"} objects.
func (c Course) MarshalJSON() ([]byte, error) {
	out := courseJSON{
		Name:               c.Name,
		AvailableGameTypes: c.AvailableGameTypes,
		Pricing: coursePricingJSON{
			GameTypes: make([]gameTypePriceJSON, 0, len(c.AvailableGameTypes)),
			AddOns:    c.AddOns,
		},
	}
	if out.AvailableGameTypes == nil {
		out.AvailableGameTypes = []string{}
	}
	if out.Pricing.AddOns == nil {
		out.Pricing.AddOns = []AddOn{}
	}

	for _, name := range c.AvailableGameTypes {
		entry := gameTypePriceJSON{Name: name}
		switch p := c.GameTypePrices[name].(type) {
		case FixedPrice:
			entry.Price = float64(p)
		case VariablePrice:
			entry.Price = p
		}
		out.Pricing.GameTypes = append(out.Pricing.GameTypes, entry)
	}

	return json.Marshal(out)
}

// SkillLevel is reference data for display and filtering only.
type SkillLevel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Handicap    string `json:"handicap"`
}
