package coeffs

import (
	"fmt"
	"math"
	"sort"
)

// Profile is an initial temperature distribution on [0, 1].
type Profile func(x float64) float64

// Profiles are the named initial distributions understood by Project.
var Profiles = map[string]Profile{
	"bump":   func(x float64) float64 { return 0.5 * (1 - math.Cos(2*math.Pi*x)) },
	"cosine": func(x float64) float64 { return 0.5 + 0.5*math.Cos(math.Pi*x) },
	"step":   func(x float64) float64 { return 1 },
	"ramp":   func(x float64) float64 { return x },
	"tent":   func(x float64) float64 { return 1 - math.Abs(2*x-1) },
}

// GetProfile looks up a named profile.
func GetProfile(name string) (Profile, error) {
	p, ok := Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownProfile, name, ProfileNames())
	}
	return p, nil
}

// ProfileNames lists the named profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
