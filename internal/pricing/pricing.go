// Package pricing holds the per-model token price tables used for run cost
// estimation.
package pricing

import (
	"fmt"
	"sort"
	"strings"
)

// Rates are USD prices per million tokens.
type Rates struct {
	Input      float64
	Output     float64
	CacheWrite float64
	CacheRead  float64
}

const perMillion = 1_000_000

// models maps model family names to their price tables.
var models = map[string]Rates{
	"opus":   {Input: 15.00, Output: 75.00, CacheWrite: 18.75, CacheRead: 1.50},
	"sonnet": {Input: 3.00, Output: 15.00, CacheWrite: 3.75, CacheRead: 0.30},
	"haiku":  {Input: 0.80, Output: 4.00, CacheWrite: 1.00, CacheRead: 0.08},
}

// ForModel returns the price table for a model family.
func ForModel(name string) (Rates, error) {
	r, ok := models[strings.ToLower(name)]
	if !ok {
		return Rates{}, fmt.Errorf("unknown model %q (have %s)", name, strings.Join(ModelNames(), ", "))
	}
	return r, nil
}

// ModelNames lists the known model families, sorted.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cost computes the USD cost of a token breakdown.
func (r Rates) Cost(input, output, cacheWrite, cacheRead int64) float64 {
	return float64(input)/perMillion*r.Input +
		float64(output)/perMillion*r.Output +
		float64(cacheWrite)/perMillion*r.CacheWrite +
		float64(cacheRead)/perMillion*r.CacheRead
}
