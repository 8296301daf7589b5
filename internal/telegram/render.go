package telegram

import (
	"fmt"
	"html"
	"io"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"carmarket/internal/i18n"
	"carmarket/pkg/domain"
)

// listingCaption renders one listing as an HTML caption. Extended fields are
// shown only when the listing carries them, so reduced-intake ads stay short.
func listingCaption(lang string, l domain.Listing, viewerID int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚘 <b>%s</b>\n", html.EscapeString(l.Model))
	fmt.Fprintf(&b, "%s %d\n", i18n.T(lang, "year_label"), l.Year)
	fmt.Fprintf(&b, "%s $%d\n", i18n.T(lang, "price_label"), l.Price)
	if l.Mileage > 0 {
		fmt.Fprintf(&b, "%s %d\n", i18n.T(lang, "mileage_label"), l.Mileage)
	}
	if l.Location != "" {
		fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "location_label"), html.EscapeString(l.Location))
	}
	if l.Condition > 0 {
		fmt.Fprintf(&b, "%s %d/10\n", i18n.T(lang, "condition_label"), l.Condition)
	}
	fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "phone_label"), html.EscapeString(l.Phone))
	fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "posted_label"), l.CreatedAt.Format("02 Jan 2006"))
	b.WriteString("\n")
	if l.OwnerID == viewerID {
		b.WriteString(i18n.T(lang, "manage_tip"))
	} else {
		b.WriteString(i18n.T(lang, "contact_tip"))
	}
	return b.String()
}

// sendListing posts one listing card with its photo when the photo is still
// retrievable, falling back to a plain text card.
func (b *Bot) sendListing(chatID int64, lang string, l domain.Listing, viewerID int64) {
	caption := listingCaption(lang, l, viewerID)
	kb := listingKeyboard(lang, l, viewerID)

	if l.PhotoKey != "" && b.photos != nil {
		rc, err := b.photos.Open(b.ctx(), l.PhotoKey)
		if err == nil {
			defer rc.Close()
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileReader{Name: l.PhotoKey, Reader: rc})
			photo.Caption = caption
			photo.ParseMode = tgbotapi.ModeHTML
			photo.ReplyMarkup = kb
			if _, err := b.api.Send(photo); err == nil {
				return
			}
			b.log.Warn("photo send failed, falling back to text", "listing_id", l.ID, "err", err)
		} else {
			b.log.Warn("photo open failed", "listing_id", l.ID, "key", l.PhotoKey, "err", err)
		}
	}

	msg := tgbotapi.NewMessage(chatID, caption)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("listing send failed", "listing_id", l.ID, "err", err)
	}
}

func (b *Bot) sendText(chatID int64, text string, markup any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "chat_id", chatID, "err", err)
	}
}

// drain discards the rest of a reader so HTTP connections can be reused.
func drain(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
