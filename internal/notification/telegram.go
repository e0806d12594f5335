package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	loc    *time.Location
	logger logger.Logger
}

func NewTelegramNotifier(token string, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if loc == nil {
		loc = time.UTC
	}
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{loc: loc, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, loc: loc, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation) {
	var head string
	switch r.Status {
	case domain.StatusApproved:
		head = "*Бронь подтверждена!*"
	default:
		head = "*Бронь ожидает подтверждения администратора*"
	}
	n.send(ctx, user.TelegramChatID, head+"\n\n"+n.describe(r))
}

func (n *TelegramNotifier) NotifyReservationStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation) {
	var head string
	switch r.Status {
	case domain.StatusApproved:
		head = "*Бронь одобрена*"
	case domain.StatusDenied:
		head = "*Бронь отклонена*"
	case domain.StatusCancelled:
		head = "*Бронь отменена*"
	default:
		head = "*Бронь ожидает подтверждения администратора*"
	}

	text := head + "\n\n" + n.describe(r)
	if r.StatusReason != "" && r.Status != domain.StatusApproved {
		text += "\nПричина: " + escape(r.StatusReason)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) describe(r *domain.Reservation) string {
	return fmt.Sprintf("Удобство: %s\nВремя (%s): %s - %s",
		escape(r.AmenityName),
		n.loc.String(),
		r.StartTime.In(n.loc).Format(timeLayout),
		r.EndTime.In(n.loc).Format("15:04"),
	)
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
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escape keeps user-supplied text from breaking legacy Markdown parsing.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
