package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/formatting"
	"github.com/teetime/teetime/internal/model"
	"github.com/teetime/teetime/internal/pricing"
	"github.com/teetime/teetime/internal/service"
)

var errQuoteUsage = errors.New("usage: /quote Course | Game type | YYYY-MM-DD | players [| add-on, add-on]")

// parseQuoteCommand reads "/quote Course | Game type | date | players | add-ons".
// The add-on part is optional.
func parseQuoteCommand(text string) (model.BookingDraft, error) {
	if !isQuoteCommand(text) {
		return model.BookingDraft{}, errQuoteUsage
	}
	text = strings.TrimSpace(text)
	args := strings.TrimSpace(strings.TrimPrefix(text, strings.Fields(text)[0]))

	parts := strings.Split(args, "|")
	if len(parts) < 4 || len(parts) > 5 {
		return model.BookingDraft{}, errQuoteUsage
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" || parts[1] == "" {
		return model.BookingDraft{}, errQuoteUsage
	}

	players, err := pricing.ParsePlayerCount(parts[3])
	if err != nil {
		return model.BookingDraft{}, err
	}

	draft := model.BookingDraft{
		Location:        parts[0],
		GameTypes:       []string{parts[1]},
		Date:            parts[2],
		NumberOfPlayers: players,
	}
	if len(parts) == 5 {
		for _, name := range strings.Split(parts[4], ",") {
			if name = strings.TrimSpace(name); name != "" {
				draft.SelectedAddOns = append(draft.SelectedAddOns, name)
			}
		}
	}
	return draft, nil
}

// isQuoteCommand matches "/quote" and "/quote@SomeBot" as the first word only.
func isQuoteCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	return fields[0] == "/quote" || strings.HasPrefix(fields[0], "/quote@")
}

func renderQuote(draft model.BookingDraft, quote *service.Quote) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s, %s\n", draft.Location, strings.Join(draft.GameTypes, ", "))
	if day, err := pricing.ParseDate(draft.Date); err == nil {
		fmt.Fprintf(&sb, "%s, %s\n", formatting.FormatDate(day), formatting.FormatPlayers(draft.NumberOfPlayers))
	} else {
		fmt.Fprintf(&sb, "%s\n", formatting.FormatPlayers(draft.NumberOfPlayers))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Green fee: %s\n", formatting.FormatPrice(quote.Cost.GreenFee))
	if len(draft.SelectedAddOns) > 0 {
		fmt.Fprintf(&sb, "Add-ons (%s): %s\n", strings.Join(draft.SelectedAddOns, ", "), formatting.FormatPrice(quote.Cost.AddOns))
	}
	fmt.Fprintf(&sb, "Booking fee: %s\n", formatting.FormatPrice(quote.Cost.BookingFee))
	fmt.Fprintf(&sb, "Total: %s\n", formatting.FormatPrice(quote.Cost.Total))
	fmt.Fprintf(&sb, "Per player: %s (%s of the bill each)", formatting.FormatPrice(quote.Cost.PerPlayer), formatting.FormatPercent(quote.Progress))

	return sb.String()
}

func renderCourses(courses []model.Course) string {
	var sb strings.Builder
	for i, course := range courses {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(course.Name + "\n")
		for _, gameType := range course.AvailableGameTypes {
			fmt.Fprintf(&sb, "  %s: %s\n", gameType, renderPrice(course.GameTypePrices[gameType]))
		}
		for _, addOn := range course.AddOns {
			fmt.Fprintf(&sb, "  + %s: %s\n", addOn.Name, formatting.FormatPriceShort(addOn.Price))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderPrice(price model.Price) string {
	switch p := price.(type) {
	case model.FixedPrice:
		return formatting.FormatPriceShort(float64(p))
	case model.VariablePrice:
		return fmt.Sprintf("%s weekday / %s weekend",
			formatting.FormatPriceShort(p.Weekday), formatting.FormatPriceShort(p.Weekend))
	default:
		return "n/a"
	}
}

// upcoming keeps games dated today or later, in the order given.
func upcoming(games []*model.Booking, now time.Time) []*model.Booking {
	out := make([]*model.Booking, 0, len(games))
	for _, g := range games {
		if _, ok, err := pricing.UpcomingDay(g.Date, now); err == nil && ok {
			out = append(out, g)
		}
	}
	return out
}

func renderTeeTimes(games []*model.Booking) string {
	if len(games) == 0 {
		return "No upcoming tee times."
	}

	var sb strings.Builder
	for i, g := range games {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		when := g.Date
		if day, err := pricing.ParseDate(g.Date); err == nil {
			when = formatting.FormatDate(day)
		}
		fmt.Fprintf(&sb, "%s\n%s at %s, %s\n%s, %s",
			g.Title, when, formatting.FormatTeeTime(g.TeeTime), g.Location,
			g.SkillLevel, formatting.FormatPlayers(g.NumberOfPlayers))
		if g.Cost != nil {
			fmt.Fprintf(&sb, ", %s per player", formatting.FormatPrice(g.Cost.PerPlayer))
		}
		if g.Organizer != nil {
			fmt.Fprintf(&sb, "\nOrganizer: %s", g.Organizer.Name)
		}
	}
	return sb.String()
}

// errorReply turns an error into text for the chat.
func errorReply(err error) string {
	var (
		dateErr  *pricing.InvalidDateError
		countErr *pricing.InvalidPlayerCountError
	)

	switch {
	case errors.Is(err, errQuoteUsage):
		return err.Error()
	case errors.As(err, &dateErr):
		return fmt.Sprintf("Can't read the date %q, use YYYY-MM-DD.", dateErr.Value)
	case errors.As(err, &countErr):
		return "Number of players must be a whole number greater than zero."
	case errors.Is(err, catalog.ErrUnknownCourse):
		return "Unknown course. See /courses."
	case errors.Is(err, catalog.ErrGameTypeNotOffered):
		return "That course does not offer this game type. See /courses."
	case errors.Is(err, catalog.ErrAddOnNotOffered):
		return "That course does not offer one of these add-ons. See /courses."
	default:
		return "Something went wrong, try again later."
	}
}
