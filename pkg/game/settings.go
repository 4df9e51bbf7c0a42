package game

import (
	"fmt"

	"github.com/jwebster45206/treasure-hunter/pkg/town"
)

// ModeHard makes towns rougher and the shop stingier. It plays normal town
// rules otherwise.
const ModeHard = "h"

// Settings are fixed for the whole hunt.
type Settings struct {
	Mode      string
	Toughness float64 // probability in [0, 1] that a new town is rough
	Markdown  float64 // fraction of an item's cost the shop pays back
}

// DefaultSettings returns the standard odds for mode.
func DefaultSettings(mode string) Settings {
	switch mode {
	case ModeHard:
		return Settings{Mode: mode, Toughness: 0.75, Markdown: 0.25}
	case town.ModeEasy:
		return Settings{Mode: mode, Toughness: 0.4, Markdown: 1.0}
	default:
		return Settings{Mode: mode, Toughness: 0.4, Markdown: 0.5}
	}
}

func (s Settings) Validate() error {
	if s.Toughness < 0 || s.Toughness > 1 {
		return fmt.Errorf("toughness %.2f outside [0, 1]", s.Toughness)
	}
	if s.Markdown < 0 || s.Markdown > 1 {
		return fmt.Errorf("markdown %.2f outside [0, 1]", s.Markdown)
	}
	return nil
}
