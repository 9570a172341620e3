package game

import (
	"fmt"

	"github.com/pthm-cable/forage/config"
)

// Settings are the round parameters the user may change between rounds.
type Settings struct {
	Characters int
	Foods      int
	TargetFood int
	TTLSeconds int
	FPS        int
}

// SettingsFromConfig returns the initial round settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Characters: cfg.Round.Characters,
		Foods:      cfg.Round.Foods,
		TargetFood: cfg.Food.Target,
		TTLSeconds: cfg.Round.TTLSeconds,
		FPS:        cfg.Round.FPS,
	}
}

// Settings returns the settings of the running round.
func (g *Game) Settings() Settings { return g.settings }

// PendingSettings returns the settings queued for the next round, if any.
func (g *Game) PendingSettings() (Settings, bool) {
	if g.pending == nil {
		return Settings{}, false
	}
	return *g.pending, true
}

// ApplySettings queues s for the next round. The running round is not
// affected. Settings that could not be placed on the stage are rejected with
// an error wrapping config.ErrInvalid.
func (g *Game) ApplySettings(s Settings) error {
	if s.TTLSeconds <= 0 || s.FPS <= 0 {
		return fmt.Errorf("%w: ttl and fps must be positive", config.ErrInvalid)
	}
	if s.TargetFood < 0 {
		return fmt.Errorf("%w: negative food target", config.ErrInvalid)
	}
	if err := g.config().CheckDensity(s.Characters, s.Foods); err != nil {
		return err
	}
	g.pending = &s
	return nil
}
