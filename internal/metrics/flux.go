package metrics

import "math"

type MaxAbsFlux struct {
	value float64
}

func NewMaxAbsFlux() *MaxAbsFlux { return &MaxAbsFlux{} }

func (m *MaxAbsFlux) Name() string { return "max_abs_flux" }

func (m *MaxAbsFlux) Observe(s Slice) {
	for _, q := range s.Flux {
		m.value = math.Max(m.value, math.Abs(q))
	}
}

func (m *MaxAbsFlux) Value() float64 { return m.value }
func (m *MaxAbsFlux) Reset()         { m.value = 0 }

// BoundaryResidual is the largest magnitude seen at the first and last
// spatial samples, of either the temperature or the flux. It measures how
// well a truncated series honours its boundary condition when the samples
// include the rod ends.
type BoundaryResidual struct {
	name  string
	flux  bool
	value float64
}

func NewBoundaryTemperatureResidual() *BoundaryResidual {
	return &BoundaryResidual{name: "boundary_temperature_residual"}
}

func NewBoundaryFluxResidual() *BoundaryResidual {
	return &BoundaryResidual{name: "boundary_flux_residual", flux: true}
}

func (b *BoundaryResidual) Name() string { return b.name }

func (b *BoundaryResidual) Observe(s Slice) {
	v := s.Temperature
	if b.flux {
		v = s.Flux
	}
	if len(v) == 0 {
		return
	}
	b.value = math.Max(b.value, math.Max(math.Abs(v[0]), math.Abs(v[len(v)-1])))
}

func (b *BoundaryResidual) Value() float64 { return b.value }
func (b *BoundaryResidual) Reset()         { b.value = 0 }
