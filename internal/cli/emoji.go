package cli

import (
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetPhaseEmoji returns the symbol for how a run ended
func GetPhaseEmoji(phase driver.Phase) string {
	switch phase {
	case driver.PhaseDone:
		return GetEmoji("done")
	case driver.PhaseFailed:
		return GetEmoji("error")
	case driver.PhaseCancelled:
		return GetEmoji("cancelled")
	case driver.PhaseCountdown:
		return GetEmoji("countdown")
	default:
		return GetEmoji("run")
	}
}

// GetSupportEmoji marks whether an algorithm can be run
func GetSupportEmoji(supported bool) string {
	if supported {
		return GetEmoji("success")
	}
	return GetEmoji("warning")
}
