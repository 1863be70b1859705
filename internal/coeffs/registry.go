package coeffs

import (
	"fmt"
	"sort"

	"github.com/san-kum/heatrod/internal/fourier"
)

// Set is a named coefficient provider together with the boundary family
// its basis belongs to.
type Set struct {
	Name     string
	Boundary fourier.Boundary
	Coeffs   fourier.Coefficients
	Profile  string
}

type Registry struct {
	sets map[string]Set
}

func NewRegistry() *Registry {
	r := &Registry{sets: make(map[string]Set)}

	r.Register(Set{Name: "dirichlet_bump", Boundary: fourier.Dirichlet, Coeffs: fourier.CoefficientFunc(DirichletBump), Profile: "bump"})
	r.Register(Set{Name: "neumann_cosine", Boundary: fourier.Neumann, Coeffs: fourier.CoefficientFunc(NeumannCosine), Profile: "bump"})
	r.Register(Set{Name: "dirichlet_step", Boundary: fourier.Dirichlet, Coeffs: fourier.CoefficientFunc(DirichletStep), Profile: "step"})
	r.Register(Set{Name: "neumann_ramp", Boundary: fourier.Neumann, Coeffs: fourier.CoefficientFunc(NeumannRamp), Profile: "ramp"})

	return r
}

// Register adds or replaces a set.
func (r *Registry) Register(s Set) {
	r.sets[s.Name] = s
}

func (r *Registry) Get(name string) (Set, error) {
	s, ok := r.sets[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownSet, name, r.Names())
	}
	return s, nil
}

// Names lists the registered sets in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
