package handler

import (
	"deptbot/internal/domain"
	"deptbot/internal/menu"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const helpText = "/start: Kickstart the conversation and explore features.\n" +
	"/ask: Ask a question to the AI.\n" +
	"/help: Get assistance with commands and usage.\n" +
	"/faq: Frequently asked questions.\n" +
	"/feedback: Send feedback to the developer.\n"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	return h.showRootMenu(c)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(helpText)
}

// handleAsk handles /ask command; the next free-text message goes to the AI
func (h *Handler) handleAsk(c tele.Context) error {
	h.dialogs.SetState(c.Sender().ID, domain.StateAwaitingQuestion)
	return c.Send(menu.QuestionPrompt)
}

// handleFAQ handles /faq command
func (h *Handler) handleFAQ(c tele.Context) error {
	return h.sendNode(c, h.menu.Resolve(menu.KeyFAQ))
}

// handleFeedback handles /feedback command; the next free-text message is
// forwarded to the admin chat
func (h *Handler) handleFeedback(c tele.Context) error {
	h.stats.LogAction(c.Sender().ID, domain.ActionSendFeedback)
	h.dialogs.SetState(c.Sender().ID, domain.StateAwaitingFeedback)
	return c.Send(menu.FeedbackPrompt)
}
