package handler

import (
	"context"
	"errors"
	"strings"

	"deptbot/internal/domain"
	"deptbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// textRoute classifies what a free-text message means for the sender
type textRoute int

const (
	routeQuestion textRoute = iota
	routeFeedback
	routeUnknownCommand
	routeDefault
)

// routeText picks the branch for a free-text message in strict priority
// order: an armed question flag wins, then an armed feedback flag, then
// command-marker text, then the generic prompt.
func routeText(state domain.State, text string) textRoute {
	switch {
	case state == domain.StateAwaitingQuestion:
		return routeQuestion
	case state == domain.StateAwaitingFeedback:
		return routeFeedback
	case strings.HasPrefix(text, "/"):
		return routeUnknownCommand
	default:
		return routeDefault
	}
}

// handleText handles all free-text messages based on dialog state
func (h *Handler) handleText(c tele.Context) error {
	sender := c.Sender()
	text := strings.TrimSpace(c.Text())
	state := h.dialogs.Get(sender.ID)

	switch routeText(state.State, text) {
	case routeQuestion:
		// Flag stays armed so consecutive questions need no re-selection
		answer, err := h.ask.Ask(context.Background(), sender.ID, text)
		if err != nil {
			return c.Send(msgError)
		}
		if err := c.Send(answer); err != nil {
			return err
		}
		return h.showExitOption(c)

	case routeFeedback:
		err := h.feedback.Submit(sender.ID, sender.Username, text)
		h.dialogs.Reset(sender.ID)

		switch {
		case errors.Is(err, service.ErrNoAdminChat):
			if err := c.Send("Failed to send feedback. Admin chat ID is not set."); err != nil {
				return err
			}
		case err != nil:
			h.logger.Error("Feedback submission failed",
				zap.Int64("user_id", sender.ID),
				zap.Error(err),
			)
			return c.Send(msgError)
		default:
			if err := c.Send("Thank you for your feedback!"); err != nil {
				return err
			}
		}
		return h.showRootMenu(c)

	case routeUnknownCommand:
		h.stats.LogAction(sender.ID, domain.ActionSendMessage)
		if err := c.Send("Unknown command. Please use /help to see the available commands."); err != nil {
			return err
		}
		return c.Send(helpText)

	default:
		h.stats.LogAction(sender.ID, domain.ActionSendMessage)
		if err := c.Send("Please use the /ask command to ask a question."); err != nil {
			return err
		}
		return h.showExitOption(c)
	}
}
