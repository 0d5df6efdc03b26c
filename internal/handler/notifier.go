package handler

import (
	tele "gopkg.in/telebot.v3"
)

// AdminNotifier delivers feedback to the configured admin chat over the bot
// transport. It implements service.Notifier.
type AdminNotifier struct {
	bot    *tele.Bot
	chatID int64
}

// NewAdminNotifier creates a notifier for the given admin chat
func NewAdminNotifier(bot *tele.Bot, chatID int64) *AdminNotifier {
	return &AdminNotifier{
		bot:    bot,
		chatID: chatID,
	}
}

// NotifyAdmin sends the text to the admin chat
func (n *AdminNotifier) NotifyAdmin(text string) error {
	_, err := n.bot.Send(tele.ChatID(n.chatID), text)
	return err
}
