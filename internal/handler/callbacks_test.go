package handler

import (
	"testing"

	"deptbot/internal/menu"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "ai_assistance",
			expected: "ai_assistance",
		},
		{
			name:     "string with whitespace",
			input:    "  faq_1  ",
			expected: "faq_1",
		},
		{
			name:     "string with newline",
			input:    "2nd_\nyear",
			expected: "2nd_year",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "end\x00\x01",
			expected: "end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCallbackKey(t *testing.T) {
	tests := []struct {
		name     string
		callback *tele.Callback
		expected string
	}{
		{
			name:     "unique preferred",
			callback: &tele.Callback{Unique: "course", Data: "ignored"},
			expected: "course",
		},
		{
			name:     "data fallback cleaned",
			callback: &tele.Callback{Data: " faq_0\n"},
			expected: "faq_0",
		},
		{
			name:     "empty callback",
			callback: &tele.Callback{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, callbackKey(tt.callback))
		})
	}
}

func TestMarkupFor(t *testing.T) {
	registry := menu.New()

	t.Run("root menu buttons", func(t *testing.T) {
		markup := markupFor(registry.Root())

		assert.NotNil(t, markup)
		assert.Len(t, markup.InlineKeyboard, 3)
		assert.Equal(t, "AI Assistance", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "Feedback", markup.InlineKeyboard[2][0].Text)
	})

	t.Run("course leaf mixes links and exit", func(t *testing.T) {
		node := registry.Resolve("2nd_year_1st_semester")
		markup := markupFor(node)

		assert.NotNil(t, markup)
		rows := markup.InlineKeyboard
		assert.NotEmpty(t, rows)

		// All but the last row navigate out via URL
		for _, row := range rows[:len(rows)-1] {
			assert.NotEmpty(t, row[0].URL)
		}
		exit := rows[len(rows)-1][0]
		assert.Equal(t, "Exit", exit.Text)
		assert.Empty(t, exit.URL)
	})

	t.Run("leaf without buttons has no markup", func(t *testing.T) {
		node := registry.Resolve(menu.KeyAboutDeveloper)
		assert.Nil(t, markupFor(node))
	})
}
