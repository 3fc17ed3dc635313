package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShortCode(t *testing.T) {
	t.Run("produces codes of fixed length from the alphabet", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := GenerateShortCode()
			require.NoError(t, err)
			assert.Len(t, code, shortCodeLength)
			for _, ch := range code {
				assert.Contains(t, charset, string(ch))
			}
		}
	})

	t.Run("does not repeat across a small sample", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			code, err := GenerateShortCode()
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %s in 1000 draws", code)
			seen[code] = true
		}
	})
}

func TestValidateCustomShortCode(t *testing.T) {
	tests := []struct {
		name      string
		shortCode string
		wantErr   bool
	}{
		{"valid alphanumeric", "myLink1", false},
		{"valid with hyphen and underscore", "my-link_2", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 20), false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 21), true},
		{"contains space", "my link", true},
		{"contains slash", "my/link", true},
		{"reserved word", "admin", true},
		{"reserved word different case", "Admin", true},
		{"reserved route", "api", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomShortCode(tt.shortCode)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
