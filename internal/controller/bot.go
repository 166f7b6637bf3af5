package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/service"
)

// BotController serves the catalog and quotes over Telegram.
type BotController struct {
	bot      *bot.Bot
	catalog  *catalog.Catalog
	bookings *service.BookingService
	logger   *zap.Logger
	now      func() time.Time
}

func NewBotController(
	botInstance *bot.Bot,
	cat *catalog.Catalog,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:      botInstance,
		catalog:  cat,
		bookings: bookingService,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterHandlers wires the commands and publishes the command menu.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/courses", bot.MatchTypeExact, c.HandleCourses)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/teetimes", bot.MatchTypeExact, c.HandleTeeTimes)
	c.bot.RegisterHandlerMatchFunc(matchQuote, c.HandleQuote)

	return c.setCommands(ctx)
}

func matchQuote(update *models.Update) bool {
	return update.Message != nil && isQuoteCommand(update.Message.Text)
}

func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "Start"},
		{Command: "help", Description: "How to use the bot"},
		{Command: "courses", Description: "Courses, game types and add-ons"},
		{Command: "teetimes", Description: "Upcoming tee times"},
		{Command: "quote", Description: "Price a round"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start blocks until ctx is cancelled.
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
}

func (c *BotController) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		c.logger.Error("Failed to send message",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
