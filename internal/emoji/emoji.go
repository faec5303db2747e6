package emoji

import "sync/atomic"

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"error":       {"❌", "[ERR]"},
	"warning":     {"⚠️", "[WRN]"},
	"info":        {"ℹ️", "[INF]"},
	"success":     {"✅", "[OK]"},
	"run":         {"🚀", "[RUN]"},
	"countdown":   {"⏳", "[..]"},
	"compare":     {"🔍", "[CMP]"},
	"swap":        {"🔀", "[SWP]"},
	"sorted":      {"🟩", "[OK]"},
	"unsorted":    {"⬜", "[--]"},
	"sweep":       {"🧹", "[SWE]"},
	"done":        {"🏁", "[END]"},
	"cancelled":   {"🛑", "[CAN]"},
	"pause":       {"⏸️", "[||]"},
	"sound":       {"🔊", "[SND]"},
	"mute":        {"🔇", "[MUT]"},
	"statistics":  {"📊", "[STATS]"},
	"algorithm":   {"🧮", "[ALG]"},
	"arrangement": {"🎲", "[ARR]"},
	"number":      {"🔢", "[#]"},
	"timer":       {"⏱️", "[T]"},
	"help":        {"❓", "[?]"},
	"door":        {"🚪", "[EXIT]"},
}

var emojiDisabled atomic.Bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled.Store(disabled)
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled.Load()
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled.Load() {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}

// Keys lists every known emoji key
func Keys() []string {
	keys := make([]string, 0, len(emojiMap))
	for k := range emojiMap {
		keys = append(keys, k)
	}
	return keys
}
