package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/chris-kelly1/WeDo/internal/models"
	"github.com/chris-kelly1/WeDo/internal/repositories"
)

// Bot is an optional Telegram channel for daily reminders. Users link their
// chat with "/link <username>"; links live in memory alongside the rest of
// the store.
type Bot struct {
	api   *tgbotapi.BotAPI
	users repositories.UserRepository

	mu    sync.RWMutex
	chats map[int64]int64 // user id -> chat id
}

func New(token string, users repositories.UserRepository) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Bot{api: api, users: users, chats: make(map[int64]int64)}, nil
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	log.Printf("[bot] started as @%s", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.reply(msg.Chat.ID, "Link your WeDo account with /link <username> to get daily task reminders here.")
	case "link":
		username := strings.TrimSpace(msg.CommandArguments())
		if username == "" {
			b.reply(msg.Chat.ID, "Usage: /link <username>")
			return
		}
		user, err := b.users.FindByUsername(ctx, username)
		if err != nil {
			log.Printf("[bot][link] lookup %q: %v", username, err)
			b.reply(msg.Chat.ID, "Something went wrong, try again later.")
			return
		}
		if user == nil {
			b.reply(msg.Chat.ID, fmt.Sprintf("No WeDo user named %q.", username))
			return
		}
		b.mu.Lock()
		b.chats[user.ID] = msg.Chat.ID
		b.mu.Unlock()
		b.reply(msg.Chat.ID, fmt.Sprintf("Linked! %s will get daily reminders here.", user.Name))
	}
}

// NotifyUser implements services.Notifier. Users without a linked chat are
// skipped silently.
func (b *Bot) NotifyUser(user models.User, text string) error {
	b.mu.RLock()
	chatID, ok := b.chats[user.ID]
	b.mu.RUnlock()
	if !ok {
		return nil
	}
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[bot][reply] chat=%d: %v", chatID, err)
	}
}
