// Package notify tells organisers about new registrations over Telegram.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mckvie/hackathon/internal/hackathon"
)

type messenger interface {
	SendText(chatID int64, text string) error
}

// Telegram posts a short message to each admin chat.
type Telegram struct {
	logger *slog.Logger
	bot    messenger
	chats  []int64
}

func NewTelegram(logger *slog.Logger, token string, chats []int64) (*Telegram, error) {
	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting telegram bot: %w", err)
	}
	b.Debug = false
	return &Telegram{logger: logger, bot: botAPI{b}, chats: chats}, nil
}

// RegistrationAdded never fails the caller; send errors are logged.
func (t *Telegram) RegistrationAdded(_ context.Context, rec hackathon.RegistrationRecord) {
	text := Message(rec)
	for _, chat := range t.chats {
		if err := t.bot.SendText(chat, text); err != nil {
			t.logger.Warn("telegram notify failed", "chat_id", chat, "team_id", rec.TeamID, "error", err)
		}
	}
}

// Message is the notification text for rec.
func Message(rec hackathon.RegistrationRecord) string {
	msg := fmt.Sprintf("🎃 New registration %s\nTeam: %s (%s)\nLeader: %s <%s>\nCategory: %s",
		rec.TeamID, rec.TeamName, rec.TeamSize, rec.TeamLeaderName, rec.TeamLeaderEmail,
		hackathon.CategoryDisplay(rec.ProblemCategory))
	if rec.AddedBy != "" {
		msg += "\nAdded by: " + rec.AddedBy
	}
	return msg
}

type botAPI struct {
	bot *tgbotapi.BotAPI
}

func (b botAPI) SendText(chatID int64, text string) error {
	_, err := b.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
