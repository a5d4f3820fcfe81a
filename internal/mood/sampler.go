package mood

import (
	"math/rand"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Sampler draws base colours from a mood Table.
// The table is shared read-only; the random source is owned by the sampler,
// so a Sampler must not be used from several goroutines at once.
type Sampler struct {
	table *Table
	rng   *rand.Rand
}

// NewSampler creates a Sampler over table using rng.
// Pass a seeded source for reproducible results.
func NewSampler(table *Table, rng *rand.Rand) *Sampler {
	return &Sampler{table: table, rng: rng}
}

// GenerateBaseColor picks one of the mood's hue intervals uniformly, then
// draws hue, saturation and value uniformly within their intervals.
func (s *Sampler) GenerateBaseColor(name string) (colour.RGB, error) {
	p, err := s.table.Lookup(name)
	if err != nil {
		return colour.RGB{}, err
	}

	hues := p.Hues[s.rng.Intn(len(p.Hues))]

	return colour.HSVToRGB(colour.HSV{
		H: colour.Uniform(s.rng, hues.Min, hues.Max),
		S: colour.Uniform(s.rng, p.Saturation.Min, p.Saturation.Max),
		V: colour.Uniform(s.rng, p.Value.Min, p.Value.Max),
	}), nil
}
