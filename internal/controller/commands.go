package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/model"
)

const helpText = "Tee time commands:\n\n" +
	"/courses - courses with their game types and add-ons\n" +
	"/teetimes - upcoming tee times\n" +
	"/quote Course | Game type | YYYY-MM-DD | players [| add-on, add-on] - price a round\n\n" +
	"Example:\n" +
	"/quote Pine View Golf Course | 18-hole | 2025-05-20 | 4 | Power Cart 18 Holes"

func (c *BotController) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := "golfer"
	if update.Message.From != nil && update.Message.From.FirstName != "" {
		name = update.Message.From.FirstName
	}

	c.reply(ctx, b, update, "Hi, "+name+"!\n\nFind a tee time or price a round.\n\n"+helpText)
}

func (c *BotController) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	c.reply(ctx, b, update, helpText)
}

func (c *BotController) HandleCourses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	c.reply(ctx, b, update, renderCourses(c.catalog.Courses()))
}

func (c *BotController) HandleTeeTimes(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	games, err := c.bookings.List(ctx, model.BookingFilter{})
	if err != nil {
		c.logger.Error("Failed to list tee times", zap.Error(err))
		c.reply(ctx, b, update, errorReply(err))
		return
	}

	c.reply(ctx, b, update, renderTeeTimes(upcoming(games, c.now())))
}

func (c *BotController) HandleQuote(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	draft, err := parseQuoteCommand(update.Message.Text)
	if err != nil {
		c.reply(ctx, b, update, errorReply(err))
		return
	}

	if err := c.bookings.ValidateSelection(draft); err != nil {
		c.reply(ctx, b, update, errorReply(err))
		return
	}

	quote, err := c.bookings.Quote(draft)
	if err != nil {
		c.reply(ctx, b, update, errorReply(err))
		return
	}

	c.logger.Debug("Quote sent",
		zap.String("course", draft.Location),
		zap.Float64("total", quote.Cost.Total))
	c.reply(ctx, b, update, renderQuote(draft, quote))
}
