package fourier

import (
	"fmt"
	"strings"
)

// Boundary selects the family of boundary conditions, and with it the
// basis functions of the series.
type Boundary int

const (
	// Dirichlet holds both ends at zero temperature; sine basis.
	Dirichlet Boundary = iota
	// Neumann insulates both ends (zero flux); cosine basis plus a mean term.
	Neumann
)

func (b Boundary) String() string {
	switch b {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Valid reports whether b is one of the declared variants.
func (b Boundary) Valid() bool {
	return b == Dirichlet || b == Neumann
}

// ParseBoundary maps a case-insensitive tag to its Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dirichlet":
		return Dirichlet, nil
	case "neumann":
		return Neumann, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
}

func (b Boundary) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundary, int(b))
	}
	return []byte(b.String()), nil
}

func (b *Boundary) UnmarshalText(text []byte) error {
	v, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
