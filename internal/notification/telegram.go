package notification

import (
	"context"
	"fmt"

	"github.com/Hebelub/train-booker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const occurrenceTimeFormat = "Mon 02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBooked(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession) {
	text := fmt.Sprintf(
		"*You're booked!*\n\nSession: %s\nWhen: %s\nWhere: %s",
		s.Session.Name,
		s.OccurrenceStartTime.Format(occurrenceTimeFormat),
		s.Session.Location,
	)
	if pos := s.WaitingPosition(user.ID); pos > 0 {
		text += fmt.Sprintf("\nYou are #%d on the waiting list.", pos)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyUnbooked(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nSession: %s\nWhen: %s",
		s.Session.Name,
		s.OccurrenceStartTime.Format(occurrenceTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifySessionCancelled(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession) {
	text := fmt.Sprintf(
		"*Session cancelled by the organiser*\n\nSession: %s\nWhen: %s",
		s.Session.Name,
		s.OccurrenceStartTime.Format(occurrenceTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifySessionReminder(ctx context.Context, user *domain.Profile, s *domain.ResolvedSession) {
	text := fmt.Sprintf(
		"*Reminder*\n\nSession: %s\nStarts: %s\nWhere: %s\nInstructor: %s",
		s.Session.Name,
		s.OccurrenceStartTime.Format(occurrenceTimeFormat),
		s.Session.Location,
		s.Session.InstructorName,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
