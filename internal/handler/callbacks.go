package handler

import (
	"strings"
	"unicode"

	"deptbot/internal/domain"
	"deptbot/internal/menu"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackKey extracts the menu callback key from a callback query. Buttons
// built by markupFor carry the key in Unique; raw clients may put it in Data.
func callbackKey(callback *tele.Callback) string {
	if callback.Unique != "" {
		return callback.Unique
	}
	return cleanCallbackData(callback.Data)
}

// handleCallback handles ALL callback queries through the menu registry
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	key := callbackKey(callback)
	userID := c.Sender().ID

	h.logger.Info("Processing callback",
		zap.String("key", key),
		zap.Int64("user_id", userID),
	)

	// Acknowledge the button press before replying
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	node := h.menu.Resolve(key)

	switch node.Kind {
	case menu.KindMenu:
		return h.sendNode(c, node)

	case menu.KindReply:
		if node.Markdown {
			if err := c.Send(node.Text, tele.ModeMarkdown); err != nil {
				return err
			}
		} else if err := h.sendNode(c, node); err != nil {
			return err
		}
		return h.showExitOption(c)

	case menu.KindSetState:
		if node.State == domain.StateAwaitingFeedback {
			h.stats.LogAction(userID, domain.ActionSendFeedback)
		}
		h.dialogs.SetState(userID, node.State)
		return c.Send(node.Text)

	case menu.KindEnd:
		h.dialogs.Reset(userID)
		if err := c.Send(node.Text); err != nil {
			return err
		}
		return h.showRootMenu(c)

	case menu.KindRestart:
		return h.showRootMenu(c)

	default:
		// Unknown keys absorb into the exit prompt, never an error
		return h.showExitOption(c)
	}
}
