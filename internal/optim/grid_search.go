package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/experiment"
)

var ErrUnknownParam = errors.New("optim: unknown parameter")

// Params lists the config fields a grid can vary.
var Params = []string{"diffusivity", "terms", "length", "end"}

// Apply sets one named field of cfg.
func Apply(cfg *config.Config, name string, v float64) error {
	switch name {
	case "diffusivity":
		cfg.Diffusivity = v
	case "terms":
		cfg.Terms = int(math.Round(v))
	case "length":
		cfg.Length = v
	case "end":
		cfg.Time.End = v
	default:
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownParam, name, Params)
	}
	return nil
}

// Point is one evaluated grid combination.
type Point struct {
	Params map[string]float64
	Value  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	workers    int
}

func NewGridSearch(params []string, ranges [][]float64, workers int) *GridSearch {
	if workers < 1 {
		workers = 1
	}
	return &GridSearch{paramNames: params, ranges: ranges, workers: workers}
}

func (g *GridSearch) combinations() []map[string]float64 {
	combos := []map[string]float64{{}}
	for d, name := range g.paramNames {
		next := make([]map[string]float64, 0, len(combos)*len(g.ranges[d]))
		for _, c := range combos {
			for _, v := range g.ranges[d] {
				p := make(map[string]float64, len(c)+1)
				for k, x := range c {
					p[k] = x
				}
				p[name] = v
				next = append(next, p)
			}
		}
		combos = next
	}
	return combos
}

// Search runs base with every combination of the ranges and records
// metricName for each, in grid order. The best point is the one with the
// smallest value; NaN never wins. If no point qualifies, best has nil
// Params.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) ([]Point, Point, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, Point{}, fmt.Errorf("optim: %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}
	combos := g.combinations()
	points := make([]Point, len(combos))
	errs := make([]error, len(combos))

	sem := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, params := range combos {
		wg.Add(1)
		go func(idx int, params map[string]float64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			points[idx].Params = params
			cfg := *base
			for name, v := range params {
				if err := Apply(&cfg, name, v); err != nil {
					errs[idx] = err
					return
				}
			}

			res, err := experiment.New(&cfg, nil).Run(ctx)
			if err != nil {
				errs[idx] = fmt.Errorf("optim: %v: %w", params, err)
				return
			}
			val, ok := res.Metrics[metricName]
			if !ok {
				errs[idx] = fmt.Errorf("optim: unknown metric %s", metricName)
				return
			}
			points[idx].Value = val
		}(i, params)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, Point{}, err
		}
	}

	best := Point{Value: math.Inf(1)}
	for _, p := range points {
		// decay_time is -1 for a rod that never settles within the horizon.
		if metricName == "decay_time" && p.Value < 0 {
			continue
		}
		if p.Value < best.Value {
			best = p
		}
	}
	return points, best, nil
}

// SortedNames returns the parameter names of p in sorted order.
func (p Point) SortedNames() []string {
	names := make([]string, 0, len(p.Params))
	for k := range p.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
