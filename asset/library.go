package asset

import (
	"fmt"

	"github.com/jdeans289/sls/sprite"
)

// Library holds every static sprite of the launch, parsed once at startup
type Library struct {
	Tower  sprite.Sprite
	Rocket sprite.Sprite
	Arm    []sprite.Sprite
	// Countdown[0] is the liftoff banner, Countdown[n] the numeral n
	Countdown []sprite.Sprite
}

// Numerals returns the countdown art indexed by value, index 0 is the banner
func Numerals() []string {
	return []string{Liftoff, One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}
}

// Load parses all art, failing on the first malformed asset
func Load() (*Library, error) {
	lib := &Library{}
	var err error

	if lib.Tower, err = sprite.Parse(Tower); err != nil {
		return nil, fmt.Errorf("tower: %w", err)
	}
	if lib.Rocket, err = sprite.ParseColored(Rocket, RocketColors); err != nil {
		return nil, fmt.Errorf("rocket: %w", err)
	}

	lib.Arm = make([]sprite.Sprite, len(ArmStages))
	for i, art := range ArmStages {
		if lib.Arm[i], err = sprite.Parse(art); err != nil {
			return nil, fmt.Errorf("arm stage %d: %w", i, err)
		}
	}

	numerals := Numerals()
	lib.Countdown = make([]sprite.Sprite, len(numerals))
	for i, art := range numerals {
		if lib.Countdown[i], err = sprite.Parse(art); err != nil {
			return nil, fmt.Errorf("countdown %d: %w", i, err)
		}
	}

	return lib, nil
}

// FinalArm is the fully retracted arm stage index
func (l *Library) FinalArm() int {
	return len(l.Arm) - 1
}
