package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"carmarket/internal/i18n"
	"carmarket/pkg/domain"
)

var languageNames = map[string]string{
	"en": "English",
	"fr": "Français",
	"ar": "العربية",
}

func mainKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_add")),
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_explore")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_my")),
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_stats")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_help")),
			tgbotapi.NewKeyboardButton(i18n.T(lang, "menu_lang")),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func cancelKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "btn_cancel")),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func exploreKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "tier_under_10k")),
			tgbotapi.NewKeyboardButton(i18n.T(lang, "tier_under_20k")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "tier_under_30k")),
			tgbotapi.NewKeyboardButton(i18n.T(lang, "tier_all")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.T(lang, "btn_home")),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(languageNames))
	for _, code := range i18n.Languages() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(languageNames[code], "lang:"+code),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// listingKeyboard builds the inline buttons under one listing. Owners get a
// delete button; everyone else gets contact affordances.
func listingKeyboard(lang string, l domain.Listing, viewerID int64) tgbotapi.InlineKeyboardMarkup {
	if l.OwnerID == viewerID {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, "delete"), fmt.Sprintf("del:%d", l.ID)),
			),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, "copy_phone"), "phone:"+l.Phone),
			tgbotapi.NewInlineKeyboardButtonURL(i18n.T(lang, "message_seller"), fmt.Sprintf("tg://user?id=%d", l.OwnerID)),
		),
	)
}

func deleteConfirmKeyboard(lang string, id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, "yes_delete"), fmt.Sprintf("delc:%d", id)),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, "no_delete"), fmt.Sprintf("delx:%d", id)),
		),
	)
}

// tierFromLabel resolves a tapped tier button back to its tier, across every
// language so a keyboard rendered before a language switch still works.
func tierFromLabel(text string) (domain.Tier, bool) {
	text = strings.TrimSpace(text)
	for _, lang := range i18n.Languages() {
		for _, tier := range domain.Tiers {
			if text == i18n.T(lang, "tier_"+string(tier)) {
				return tier, true
			}
		}
	}
	return "", false
}
