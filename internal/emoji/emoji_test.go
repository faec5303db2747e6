package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	defer SetEmojiDisabled(false)

	tests := []struct {
		key      string
		disabled bool
		expected string
	}{
		{"success", false, "✅"},
		{"success", true, "[OK]"},
		{"swap", true, "[SWP]"},
		{"missing", false, "[?]"},
		{"missing", true, "[?]"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			SetEmojiDisabled(tt.disabled)
			if got := GetEmoji(tt.key); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestKeysHaveFallbacks(t *testing.T) {
	for _, k := range Keys() {
		if emojiMap[k][1] == "" {
			t.Errorf("Key %s has no fallback", k)
		}
	}
}
