// Package mood maps named moods to regions of HSV space and samples base
// colours from them.
package mood

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownMood is returned when a mood name is not in the table.
	ErrUnknownMood = errors.New("unknown mood")

	// ErrInvalidProfile is returned when a mood profile has malformed ranges.
	ErrInvalidProfile = errors.New("invalid mood profile")
)

// Built-in mood names.
const (
	Professional = "professional"
	Playful      = "playful"
	Serious      = "serious"
	Calm         = "calm"
	Energetic    = "energetic"
)

// Range is a closed interval of normalised values.
// In YAML it is written as a two element sequence: [min, max].
type Range struct {
	Min float64
	Max float64
}

// UnmarshalYAML decodes a [min, max] sequence.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var bounds []float64
	if err := node.Decode(&bounds); err != nil {
		return err
	}
	if len(bounds) != 2 {
		return fmt.Errorf("line %d: range must have exactly 2 values, got %d", node.Line, len(bounds))
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// MarshalYAML encodes the range as a flow sequence.
func (r Range) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{r.Min, r.Max} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return node, nil
}

func (r Range) valid() bool {
	return r.Min >= 0 && r.Max <= 1 && r.Min <= r.Max
}

func (r Range) overlaps(o Range) bool {
	return r.Min < o.Max && o.Min < r.Max
}

// Profile is a bounded region of HSV space: one of several hue intervals,
// combined with a single saturation and value interval.
type Profile struct {
	Hues       []Range `yaml:"hues"`
	Saturation Range   `yaml:"saturation"`
	Value      Range   `yaml:"value"`
}

// Validate checks that every interval lies in [0,1] and hue intervals are disjoint.
func (p Profile) Validate() error {
	if len(p.Hues) == 0 {
		return fmt.Errorf("%w: no hue ranges", ErrInvalidProfile)
	}
	for i, h := range p.Hues {
		if !h.valid() {
			return fmt.Errorf("%w: hue range %v out of bounds", ErrInvalidProfile, h)
		}
		for _, other := range p.Hues[i+1:] {
			if h.overlaps(other) {
				return fmt.Errorf("%w: hue ranges %v and %v overlap", ErrInvalidProfile, h, other)
			}
		}
	}
	if !p.Saturation.valid() {
		return fmt.Errorf("%w: saturation range %v out of bounds", ErrInvalidProfile, p.Saturation)
	}
	if !p.Value.valid() {
		return fmt.Errorf("%w: value range %v out of bounds", ErrInvalidProfile, p.Value)
	}
	return nil
}

// Table is the read-only mood configuration. It is built once at startup and
// shared by pointer; nothing mutates it after construction.
type Table struct {
	profiles map[string]Profile
	names    []string
}

// NewTable validates profiles and builds a Table from a copy of them.
func NewTable(profiles map[string]Profile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: table has no moods", ErrInvalidProfile)
	}

	t := &Table{
		profiles: make(map[string]Profile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}
	for name, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("mood %q: %w", name, err)
		}
		p.Hues = slices.Clone(p.Hues)
		t.profiles[name] = p
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)

	return t, nil
}

// DefaultTable returns the five built-in moods.
func DefaultTable() *Table {
	t, err := NewTable(map[string]Profile{
		Professional: {
			Hues:       []Range{{0.55, 0.65}, {0.2, 0.3}}, // Blues and greens
			Saturation: Range{0.3, 0.7},
			Value:      Range{0.6, 0.9},
		},
		Playful: {
			Hues:       []Range{{0.05, 0.15}, {0.3, 0.4}, {0.7, 0.85}}, // Oranges, greens, purples
			Saturation: Range{0.6, 1.0},
			Value:      Range{0.8, 1.0},
		},
		Serious: {
			Hues:       []Range{{0.55, 0.7}, {0.0, 0.1}}, // Blues and reds
			Saturation: Range{0.3, 0.6},
			Value:      Range{0.4, 0.7},
		},
		Calm: {
			Hues:       []Range{{0.4, 0.55}, {0.7, 0.85}}, // Greens and purples
			Saturation: Range{0.2, 0.5},
			Value:      Range{0.7, 0.9},
		},
		Energetic: {
			Hues:       []Range{{0.95, 1.0}, {0.0, 0.15}, {0.4, 0.5}}, // Reds, oranges, greens
			Saturation: Range{0.8, 1.0},
			Value:      Range{0.8, 1.0},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in mood table is invalid: %v", err))
	}
	return t
}

// tableFile is the on-disk YAML layout.
type tableFile struct {
	Moods map[string]Profile `yaml:"moods"`
}

// ParseTable decodes a YAML mood table.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mood table: %w", err)
	}
	return NewTable(f.Moods)
}

// LoadTable reads a YAML mood table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified config path
	if err != nil {
		return nil, fmt.Errorf("failed to read mood table: %w", err)
	}
	return ParseTable(data)
}

// Marshal encodes the table in the format accepted by ParseTable.
func (t *Table) Marshal() ([]byte, error) {
	return yaml.Marshal(tableFile{Moods: t.profiles})
}

// Names returns the mood names in sorted order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Lookup returns a copy of the named profile.
func (t *Table) Lookup(name string) (Profile, error) {
	p, ok := t.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s (valid options: %v)", ErrUnknownMood, name, t.names)
	}
	p.Hues = slices.Clone(p.Hues)
	return p, nil
}
