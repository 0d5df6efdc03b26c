package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminService_IsAdmin(t *testing.T) {
	tests := []struct {
		name         string
		adminHandle  string
		callerHandle string
		expected     bool
	}{
		{
			name:         "exact match",
			adminHandle:  "kipa_s",
			callerHandle: "kipa_s",
			expected:     true,
		},
		{
			name:         "different handle",
			adminHandle:  "kipa_s",
			callerHandle: "someone_else",
			expected:     false,
		},
		{
			name:         "case sensitive",
			adminHandle:  "kipa_s",
			callerHandle: "Kipa_S",
			expected:     false,
		},
		{
			name:         "empty caller",
			adminHandle:  "kipa_s",
			callerHandle: "",
			expected:     false,
		},
		{
			name:         "no admin configured",
			adminHandle:  "",
			callerHandle: "",
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAdminService(tt.adminHandle)
			assert.Equal(t, tt.expected, s.IsAdmin(tt.callerHandle))
		})
	}
}
