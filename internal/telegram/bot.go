package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"carmarket/internal/app"
	"carmarket/internal/i18n"
	"carmarket/internal/intake"
	"carmarket/internal/storage"
	"carmarket/pkg/domain"
)

// Bot is the Telegram front end. Updates are processed sequentially, which
// keeps each user's intake answers arriving in order.
type Bot struct {
	api    *tgbotapi.BotAPI
	app    *app.App
	photos storage.PhotoStore
	httpc  *http.Client
	log    *slog.Logger
	runCtx context.Context
}

// New authenticates against the Bot API and wires the transport.
func New(token string, a *app.App, photos storage.PhotoStore, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Bot{
		api:    api,
		app:    a,
		photos: photos,
		httpc:  &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}, nil
}

func (b *Bot) ctx() context.Context {
	if b.runCtx != nil {
		return b.runCtx
	}
	return context.Background()
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.runCtx = ctx
	b.setCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.log.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) setCommands() {
	cmd := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Main menu"},
		tgbotapi.BotCommand{Command: "addcar", Description: "Sell a car"},
		tgbotapi.BotCommand{Command: "explore", Description: "Browse cars by price"},
		tgbotapi.BotCommand{Command: "mycars", Description: "My listings"},
		tgbotapi.BotCommand{Command: "stats", Description: "Market stats"},
		tgbotapi.BotCommand{Command: "lang", Description: "Change language"},
		tgbotapi.BotCommand{Command: "help", Description: "How it works"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Cancel current operation"},
	)
	if _, err := b.api.Request(cmd); err != nil {
		b.log.Warn("set commands failed", "err", err)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	lang := b.app.Language(userID)

	if msg.IsCommand() {
		b.handleCommand(msg, chatID, userID, lang)
		return
	}
	if len(msg.Photo) > 0 {
		b.handlePhoto(msg, chatID, userID, lang)
		return
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "🚗"):
		b.startIntake(chatID, userID, lang)
	case strings.HasPrefix(text, "🔍"):
		b.sendText(chatID, i18n.T(lang, "explore"), exploreKeyboard(lang))
	case strings.HasPrefix(text, "🗂"):
		b.showMyListings(chatID, userID, lang)
	case strings.HasPrefix(text, "📊"):
		b.showStats(chatID, lang)
	case strings.HasPrefix(text, "ℹ"):
		b.sendText(chatID, i18n.T(lang, "help"), mainKeyboard(lang))
	case strings.HasPrefix(text, "🌐"):
		b.sendText(chatID, i18n.T(lang, "choose_language"), languageKeyboard())
	case strings.HasPrefix(text, "🏠"):
		b.goHome(chatID, userID, lang)
	default:
		if tier, ok := tierFromLabel(text); ok {
			b.showBrowse(chatID, userID, lang, tier)
			return
		}
		if b.app.IntakeActive(userID) {
			out, err := b.app.HandleIntakeText(userID, text)
			if err != nil && !errors.Is(err, intake.ErrNoSession) {
				b.log.Error("intake text failed", "user_id", userID, "err", err)
				b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
				return
			}
			if err == nil {
				b.renderOutcome(chatID, lang, out)
				return
			}
		}
		b.sendText(chatID, i18n.T(lang, "welcome"), mainKeyboard(lang))
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message, chatID, userID int64, lang string) {
	switch msg.Command() {
	case "start":
		if b.app.IntakeActive(userID) {
			_, _ = b.app.CancelIntake(userID)
		}
		b.sendText(chatID, i18n.T(lang, "welcome"), mainKeyboard(lang))
	case "help":
		b.sendText(chatID, i18n.T(lang, "help"), mainKeyboard(lang))
	case "addcar":
		b.startIntake(chatID, userID, lang)
	case "explore":
		b.sendText(chatID, i18n.T(lang, "explore"), exploreKeyboard(lang))
	case "mycars":
		b.showMyListings(chatID, userID, lang)
	case "stats":
		b.showStats(chatID, lang)
	case "lang":
		b.sendText(chatID, i18n.T(lang, "choose_language"), languageKeyboard())
	case "cancel":
		b.goHome(chatID, userID, lang)
	default:
		b.sendText(chatID, i18n.T(lang, "help"), mainKeyboard(lang))
	}
}

func (b *Bot) goHome(chatID, userID int64, lang string) {
	if b.app.IntakeActive(userID) {
		if _, err := b.app.CancelIntake(userID); err != nil {
			b.log.Warn("cancel failed", "user_id", userID, "err", err)
		}
		b.sendText(chatID, i18n.T(lang, "cancelled"), mainKeyboard(lang))
		return
	}
	b.sendText(chatID, i18n.T(lang, "welcome"), mainKeyboard(lang))
}

func (b *Bot) startIntake(chatID, userID int64, lang string) {
	out, err := b.app.StartIntake(userID)
	if err != nil {
		b.log.Error("intake start failed", "user_id", userID, "err", err)
		b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
		return
	}
	b.renderOutcome(chatID, lang, out)
}

func (b *Bot) renderOutcome(chatID int64, lang string, out intake.Outcome) {
	text := i18n.T(lang, out.PromptKey, out.Args...)
	switch {
	case out.Done, out.Cancelled, out.PromptKey == "rate_limited":
		b.sendText(chatID, text, mainKeyboard(lang))
	default:
		b.sendText(chatID, text, cancelKeyboard(lang))
	}
}

func (b *Bot) handlePhoto(msg *tgbotapi.Message, chatID, userID int64, lang string) {
	if !b.app.IntakeActive(userID) {
		b.sendText(chatID, i18n.T(lang, "welcome"), mainKeyboard(lang))
		return
	}

	// Telegram orders sizes ascending; take the largest rendition.
	largest := msg.Photo[len(msg.Photo)-1]
	url, err := b.api.GetFileDirectURL(largest.FileID)
	if err != nil {
		b.log.Error("photo url lookup failed", "user_id", userID, "err", err)
		b.sendText(chatID, i18n.T(lang, "photo_failed"), cancelKeyboard(lang))
		return
	}
	resp, err := b.httpc.Get(url)
	if err != nil {
		b.log.Error("photo download failed", "user_id", userID, "err", err)
		b.sendText(chatID, i18n.T(lang, "photo_failed"), cancelKeyboard(lang))
		return
	}
	defer drain(resp.Body)
	if resp.StatusCode != http.StatusOK {
		b.log.Error("photo download failed", "user_id", userID, "status", resp.StatusCode)
		b.sendText(chatID, i18n.T(lang, "photo_failed"), cancelKeyboard(lang))
		return
	}

	out, err := b.app.HandleIntakePhoto(b.ctx(), userID, displayName(msg.From), intake.Photo{
		Reader:      resp.Body,
		Size:        resp.ContentLength,
		ContentType: "image/jpeg",
	})
	if err != nil {
		if errors.Is(err, intake.ErrNoSession) {
			return
		}
		b.log.Error("intake photo failed", "user_id", userID, "err", err)
		b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
		return
	}
	b.renderOutcome(chatID, lang, out)
}

func (b *Bot) showBrowse(chatID, viewerID int64, lang string, tier domain.Tier) {
	label := i18n.T(lang, "tier_"+string(tier))
	listings, err := b.app.Browse(tier)
	if err != nil {
		b.log.Error("browse failed", "tier", tier, "err", err)
		b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
		return
	}
	if len(listings) == 0 {
		b.sendText(chatID, i18n.T(lang, "no_cars", "filter", label), exploreKeyboard(lang))
		return
	}
	b.sendText(chatID, i18n.T(lang, "results_header", "filter", label, "count", len(listings)), exploreKeyboard(lang))
	for _, l := range listings {
		b.sendListing(chatID, lang, l, viewerID)
	}
	b.sendText(chatID, i18n.T(lang, "end_results"), exploreKeyboard(lang))
}

func (b *Bot) showMyListings(chatID, userID int64, lang string) {
	listings, err := b.app.MyListings(userID)
	if err != nil {
		b.log.Error("my listings failed", "user_id", userID, "err", err)
		b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
		return
	}
	if len(listings) == 0 {
		b.sendText(chatID, i18n.T(lang, "no_listings"), mainKeyboard(lang))
		return
	}
	b.sendText(chatID, i18n.T(lang, "my_cars_header", "count", len(listings)), mainKeyboard(lang))
	for _, l := range listings {
		b.sendListing(chatID, lang, l, userID)
	}
	b.sendText(chatID, i18n.T(lang, "my_cars_end"), mainKeyboard(lang))
}

func (b *Bot) showStats(chatID int64, lang string) {
	stats, err := b.app.MarketStats()
	if err != nil {
		b.log.Error("stats failed", "err", err)
		b.sendText(chatID, i18n.T(lang, "storage_error"), mainKeyboard(lang))
		return
	}
	b.sendText(chatID, i18n.T(lang, "stats",
		"total", stats.Total,
		"under_10k", stats.Under10K,
		"under_20k", stats.Under20K,
		"under_30k", stats.Under30K,
	), mainKeyboard(lang))
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	lang := b.app.Language(userID)
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "lang:"):
		code := strings.TrimPrefix(data, "lang:")
		if err := b.app.SetLanguage(userID, code); err != nil {
			b.answer(cq.ID, "")
			return
		}
		b.answer(cq.ID, "")
		b.sendText(chatID, i18n.T(code, "language_changed", "lang", languageNames[code]), mainKeyboard(code))

	case strings.HasPrefix(data, "phone:"):
		phone := strings.TrimPrefix(data, "phone:")
		alert := tgbotapi.NewCallbackWithAlert(cq.ID, i18n.T(lang, "phone_copied", "phone", phone))
		if _, err := b.api.Request(alert); err != nil {
			b.log.Warn("callback answer failed", "err", err)
		}

	case strings.HasPrefix(data, "del:"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "del:"), 10, 64)
		if err != nil {
			b.answer(cq.ID, "")
			return
		}
		edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cq.Message.MessageID, deleteConfirmKeyboard(lang, id))
		if _, err := b.api.Send(edit); err != nil {
			b.log.Warn("confirm keyboard edit failed", "err", err)
		}
		b.answer(cq.ID, "")

	case strings.HasPrefix(data, "delc:"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "delc:"), 10, 64)
		if err != nil {
			b.answer(cq.ID, "")
			return
		}
		b.confirmDelete(cq, chatID, userID, id, lang)

	case strings.HasPrefix(data, "delx:"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "delx:"), 10, 64)
		if err == nil {
			restore := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, "delete"), fmt.Sprintf("del:%d", id)),
				),
			)
			edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cq.Message.MessageID, restore)
			if _, err := b.api.Send(edit); err != nil {
				b.log.Warn("keyboard restore failed", "err", err)
			}
		}
		b.answer(cq.ID, i18n.T(lang, "deletion_cancelled"))

	default:
		b.answer(cq.ID, "")
	}
}

func (b *Bot) confirmDelete(cq *tgbotapi.CallbackQuery, chatID, userID, id int64, lang string) {
	ok, err := b.app.ConfirmDelete(b.ctx(), id, userID)
	if err != nil {
		alert := tgbotapi.NewCallbackWithAlert(cq.ID, i18n.T(lang, "storage_error"))
		_, _ = b.api.Request(alert)
		return
	}
	if !ok {
		alert := tgbotapi.NewCallbackWithAlert(cq.ID, i18n.T(lang, "delete_failed"))
		_, _ = b.api.Request(alert)
		return
	}

	caption := i18n.T(lang, "listing_deleted_caption")
	var edit tgbotapi.Chattable
	if len(cq.Message.Photo) > 0 {
		edit = tgbotapi.NewEditMessageCaption(chatID, cq.Message.MessageID, caption)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, caption)
	}
	if _, err := b.api.Send(edit); err != nil {
		b.log.Warn("deleted listing edit failed", "err", err)
	}
	b.answer(cq.ID, i18n.T(lang, "listing_deleted"))
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Warn("callback answer failed", "err", err)
	}
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
