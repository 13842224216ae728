package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/san-kum/rollgrid/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNeutral = "#d3d3d3"
	DefaultSymbol  = "#84bc41"
	DefaultUnit    = "rolls"
)

// Palette is used for categories without an explicit color, by position.
var Palette = []string{
	"#ef3f5d", // light red
	"#00aaa9", // green blue
	"#fcf001", // light yellow
	"#75d1f3", // light blue
	"#ed0477", // pink
	"#84bc41", // light green
	"#01954e", // green
	"#ffc60e", // yellow
	"#ec6aa0", // light pink
	"#f69324", // orange
}

// CategoryCount is one record of the dataset.
type CategoryCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// UnmarshalYAML only accepts integer counts. A missing or null count is
// zero.
func (c *CategoryCount) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name  string    `yaml:"name"`
		Count yaml.Node `yaml:"count"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c.Name, c.Count = raw.Name, 0
	switch raw.Count.ShortTag() {
	case "!!null":
		return nil
	case "!!int":
		return raw.Count.Decode(&c.Count)
	default:
		return fmt.Errorf("%w: count %q of %q is not an integer", ErrMalformed, raw.Count.Value, raw.Name)
	}
}

type Story struct {
	Title      string              `yaml:"title"`
	Categories []CategoryCount     `yaml:"categories"`
	Colors     map[string]string   `yaml:"colors"`
	Metrics    map[string]float64  `yaml:"metrics"`
	MetricUnit string              `yaml:"metric_unit"`
	Unit       string              `yaml:"unit"`
	Highlight  string              `yaml:"highlight"`
	Neutral    string              `yaml:"neutral"`
	Symbol     string              `yaml:"symbol"`
	Captions   map[string][]string `yaml:"captions"`
}

// Load reads a story from YAML. Fields the file leaves out keep the
// values of the default story, except categories: a file that lists
// categories replaces the whole list, metrics included.
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Story, error) {
	var file Story
	if err := yaml.Unmarshal(data, &file); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s := Default()
	if file.Categories != nil {
		s.Categories = file.Categories
		s.Metrics = map[string]float64{}
		s.Colors = map[string]string{}
		s.Highlight = ""
	}
	if file.Title != "" {
		s.Title = file.Title
	}
	for k, v := range file.Colors {
		s.Colors[k] = v
	}
	for k, v := range file.Metrics {
		s.Metrics[k] = v
	}
	if file.MetricUnit != "" {
		s.MetricUnit = file.MetricUnit
	}
	if file.Unit != "" {
		s.Unit = file.Unit
	}
	if file.Highlight != "" {
		s.Highlight = file.Highlight
	}
	if file.Neutral != "" {
		s.Neutral = file.Neutral
	}
	if file.Symbol != "" {
		s.Symbol = file.Symbol
	}
	for k, v := range file.Captions {
		s.Captions[k] = v
	}
	if s.Highlight == "" && len(s.Categories) > 0 {
		s.Highlight = s.Categories[0].Name
	}

	if err := s.Sanitize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the story as YAML.
func Save(path string, s *Story) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sanitize clamps negative counts to zero and rejects records that would
// make the grid ambiguous.
func (s *Story) Sanitize() error {
	ctx := logging.PackageCtx("dataset")
	seen := make(map[string]bool, len(s.Categories))
	for i := range s.Categories {
		c := &s.Categories[i]
		if c.Name == "" {
			return fmt.Errorf("%w: record %d has no name", ErrMalformed, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicate, c.Name)
		}
		seen[c.Name] = true
		if c.Count < 0 {
			slog.WarnContext(ctx, "negative count clamped to zero", slog.String("category", c.Name), slog.Int("count", c.Count))
			c.Count = 0
		}
	}
	if s.Highlight != "" && !seen[s.Highlight] {
		return fmt.Errorf("%w: %s", ErrUnknownHighlight, s.Highlight)
	}
	if s.Neutral == "" {
		s.Neutral = DefaultNeutral
	}
	if s.Symbol == "" {
		s.Symbol = DefaultSymbol
	}
	if s.Unit == "" {
		s.Unit = DefaultUnit
	}
	if s.Colors == nil {
		s.Colors = map[string]string{}
	}
	if s.Metrics == nil {
		s.Metrics = map[string]float64{}
	}
	if s.Captions == nil {
		s.Captions = map[string][]string{}
	}
	return nil
}

func (s *Story) Names() []string {
	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = c.Name
	}
	return names
}

func (s *Story) Total() int {
	total := 0
	for _, c := range s.Categories {
		total += c.Count
	}
	return total
}

// Count returns the count of the named category, 0 if absent.
func (s *Story) Count(name string) int {
	for _, c := range s.Categories {
		if c.Name == name {
			return c.Count
		}
	}
	return 0
}

// Metric returns the derived metric of the named category, 0 if absent.
func (s *Story) Metric(name string) float64 {
	return s.Metrics[name]
}

// Percent returns the named category's share of the total, rounded to
// a whole percent.
func (s *Story) Percent(name string) int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Count(name)) / float64(total) * 100))
}

// Color returns the category's fill, falling back to the palette by
// position and to the neutral color for unknown names.
func (s *Story) Color(name string) string {
	if c, ok := s.Colors[name]; ok && c != "" {
		return c
	}
	for i, c := range s.Categories {
		if c.Name == name {
			return Palette[i%len(Palette)]
		}
	}
	return s.Neutral
}

func (s *Story) Index(name string) int {
	for i, c := range s.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}
