package handler

import (
	"fmt"
	"sort"
	"strings"

	"deptbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgNotAuthorized = "You are not authorized to use this command."

// handleBotInfo handles the admin-only /get_bot_info command
func (h *Handler) handleBotInfo(c tele.Context) error {
	if !h.admin.IsAdmin(c.Sender().Username) {
		h.logger.Warn("Unauthorized bot info request",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("username", c.Sender().Username),
		)
		return c.Send(msgNotAuthorized)
	}

	me := h.bot.Me
	info := fmt.Sprintf(
		"Bot ID: %d\n"+
			"Bot Name: %s\n"+
			"Bot Username: @%s\n"+
			"Bot Can Join Groups: %t\n"+
			"Bot Can Read All Group Messages: %t\n"+
			"Bot Supports Inline Queries: %t",
		me.ID,
		me.FirstName,
		me.Username,
		me.CanJoinGroups,
		me.CanReadMessages,
		me.SupportsInline,
	)
	return c.Send(info)
}

// handleBotUsage handles the admin-only /get_bot_usage command
func (h *Handler) handleBotUsage(c tele.Context) error {
	if !h.admin.IsAdmin(c.Sender().Username) {
		h.logger.Warn("Unauthorized usage request",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("username", c.Sender().Username),
		)
		return c.Send(msgNotAuthorized)
	}

	summary, err := h.stats.UsageSummary()
	if err != nil {
		h.logger.Error("Failed to build usage summary", zap.Error(err))
		return c.Send(msgError)
	}

	return c.Send(formatUsage(summary))
}

// formatUsage renders the usage summary with stable, sorted action lines
func formatUsage(summary domain.UsageSummary) string {
	mostCommon := summary.MostCommonAction
	if mostCommon == "" {
		mostCommon = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total Users: %d\n", summary.TotalUsers)
	fmt.Fprintf(&b, "Most Common Action: %s\n", mostCommon)
	b.WriteString("Action Counts:")

	actions := make([]string, 0, len(summary.ActionCounts))
	for action := range summary.ActionCounts {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		fmt.Fprintf(&b, "\n%s: %d", action, summary.ActionCounts[action])
	}

	return b.String()
}
