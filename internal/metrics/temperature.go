package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

type Extremum struct {
	name  string
	max   bool
	value float64
	seen  bool
}

func NewMaxTemperature() *Extremum { return &Extremum{name: "max_temperature", max: true} }
func NewMinTemperature() *Extremum { return &Extremum{name: "min_temperature"} }

func (e *Extremum) Name() string { return e.name }

func (e *Extremum) Observe(s Slice) {
	if len(s.Temperature) == 0 {
		return
	}
	v := floats.Min(s.Temperature)
	if e.max {
		v = floats.Max(s.Temperature)
	}
	if !e.seen || (e.max && v > e.value) || (!e.max && v < e.value) {
		e.value = v
		e.seen = true
	}
}

func (e *Extremum) Value() float64 {
	if !e.seen {
		return 0
	}
	return e.value
}

func (e *Extremum) Reset() {
	e.value = 0
	e.seen = false
}

// MeanTemperature is the spatial average of the first or last observed
// slice, by the trapezoid rule over the sample positions.
type MeanTemperature struct {
	name  string
	final bool
	value float64
	seen  bool
}

func NewMeanInitial() *MeanTemperature { return &MeanTemperature{name: "mean_initial"} }
func NewMeanFinal() *MeanTemperature   { return &MeanTemperature{name: "mean_final", final: true} }

func (m *MeanTemperature) Name() string { return m.name }

func (m *MeanTemperature) Observe(s Slice) {
	if m.seen && !m.final {
		return
	}
	m.value = SpatialMean(s.Space, s.Temperature)
	m.seen = true
}

func (m *MeanTemperature) Value() float64 { return m.value }

func (m *MeanTemperature) Reset() {
	m.value = 0
	m.seen = false
}

// SpatialMean integrates f over x and divides by the covered length. A
// single sample is its own mean.
func SpatialMean(x, f []float64) float64 {
	switch len(f) {
	case 0:
		return 0
	case 1:
		return f[0]
	}
	span := x[len(x)-1] - x[0]
	if span == 0 {
		return floats.Sum(f) / float64(len(f))
	}
	return integrate.Trapezoidal(x, f) / span
}

// DecayTime records the first time at which the largest deviation from
// equilibrium falls below fraction of the initial deviation. The
// equilibrium is 0 for fixed-temperature ends and the initial mean for
// insulated ends. Value is -1 until the threshold is reached.
type DecayTime struct {
	fraction    float64
	insulated   bool
	equilibrium float64
	threshold   float64
	value       float64
	samples     int
}

func NewDecayTime(fraction float64, insulated bool) *DecayTime {
	return &DecayTime{fraction: fraction, insulated: insulated, value: -1}
}

func (d *DecayTime) Name() string { return "decay_time" }

func (d *DecayTime) Observe(s Slice) {
	if d.samples == 0 {
		if d.insulated {
			d.equilibrium = SpatialMean(s.Space, s.Temperature)
		}
		d.threshold = d.fraction * d.deviation(s.Temperature)
	}
	d.samples++

	if d.value < 0 && d.deviation(s.Temperature) <= d.threshold {
		d.value = s.Time
	}
}

func (d *DecayTime) deviation(temp []float64) float64 {
	dev := 0.0
	for _, v := range temp {
		dev = math.Max(dev, math.Abs(v-d.equilibrium))
	}
	return dev
}

func (d *DecayTime) Value() float64 { return d.value }

func (d *DecayTime) Reset() {
	d.equilibrium = 0
	d.threshold = 0
	d.value = -1
	d.samples = 0
}
