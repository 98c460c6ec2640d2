package browser

import (
	"fmt"
	"strings"
)

// Profile selects the font defaults for a screen class.
type Profile string

const (
	ProfileRegular Profile = "regular"
	ProfileSmall   Profile = "small"
)

// ParseProfile accepts "small" or "regular"; anything else is an error.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileSmall:
		return ProfileSmall, nil
	case ProfileRegular:
		return ProfileRegular, nil
	default:
		return "", fmt.Errorf("browser: unknown profile %q", s)
	}
}

// Scale bounds one font size.
type Scale struct {
	Default float64
	Step    float64
	Min     float64
	Max     float64
}

func (s Scale) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// FontLimits describes both reading sizes for a profile.
type FontLimits struct {
	Arabic      Scale
	Translation Scale
}

// LimitsFor returns the built-in limits for p.
func LimitsFor(p Profile) FontLimits {
	if p == ProfileSmall {
		return FontLimits{
			Arabic:      Scale{Default: 22, Step: 1.5, Min: 16, Max: 40},
			Translation: Scale{Default: 14, Step: 1, Min: 10, Max: 26},
		}
	}
	return FontLimits{
		Arabic:      Scale{Default: 26, Step: 2, Min: 18, Max: 50},
		Translation: Scale{Default: 16, Step: 1.5, Min: 10, Max: 34},
	}
}

// Fonts holds the current reading sizes.
type Fonts struct {
	Arabic      float64 `json:"arabic"`
	Translation float64 `json:"translation"`
}

func (l FontLimits) defaults() Fonts {
	return Fonts{Arabic: l.Arabic.Default, Translation: l.Translation.Default}
}

func (l FontLimits) step(f Fonts, dir float64) Fonts {
	return Fonts{
		Arabic:      l.Arabic.clamp(f.Arabic + dir*l.Arabic.Step),
		Translation: l.Translation.clamp(f.Translation + dir*l.Translation.Step),
	}
}

func (l FontLimits) clamp(f Fonts) Fonts {
	return Fonts{
		Arabic:      l.Arabic.clamp(f.Arabic),
		Translation: l.Translation.clamp(f.Translation),
	}
}
