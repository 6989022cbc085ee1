package content

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWordsYAML []byte

// Difficulty is a word-mode tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all word tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a name to a Difficulty.
// Unknown names fall back to easy.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// WordLength returns the letter count of every word at this tier.
func (d Difficulty) WordLength() int {
	switch d {
	case DifficultyMedium:
		return 4
	case DifficultyHard:
		return 5
	default:
		return 3
	}
}

// Theme is a named group of words at one difficulty.
type Theme struct {
	Name  string   `yaml:"theme"`
	Words []string `yaml:"words"`
}

// wordFile is the on-disk layout of a word list.
type wordFile struct {
	Easy   []Theme `yaml:"easy"`
	Medium []Theme `yaml:"medium"`
	Hard   []Theme `yaml:"hard"`
}

// Catalog holds themed word lists for all difficulties.
type Catalog struct {
	themes map[Difficulty][]Theme
	flat   map[Difficulty][]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded word lists.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := ParseCatalog(defaultWordsYAML)
		if err != nil {
			panic(fmt.Sprintf("content: embedded word list is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadCatalog reads a word list YAML file. An empty path returns Default().
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: cannot read word list %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("content: word list %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog builds a catalog from YAML. Every difficulty needs at least
// one word and every word must be lowercase letters of the tier's length.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f wordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot parse word list: %w", err)
	}

	c := &Catalog{
		themes: map[Difficulty][]Theme{
			DifficultyEasy:   f.Easy,
			DifficultyMedium: f.Medium,
			DifficultyHard:   f.Hard,
		},
		flat: make(map[Difficulty][]string, 3),
	}

	for _, d := range Difficulties() {
		var all []string
		for _, th := range c.themes[d] {
			for _, w := range th.Words {
				if err := validateWord(w, d); err != nil {
					return nil, fmt.Errorf("%s/%s: %w", d, th.Name, err)
				}
			}
			all = append(all, th.Words...)
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("no words for difficulty %q", d)
		}
		c.flat[d] = all
	}
	return c, nil
}

func validateWord(w string, d Difficulty) error {
	if len(w) != d.WordLength() {
		return fmt.Errorf("word %q should have %d letters", w, d.WordLength())
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("word %q must be lowercase a-z", w)
		}
	}
	return nil
}

// WordsByDifficulty returns every word of a tier across all themes, in
// theme order. Duplicates across themes are kept.
// Unknown difficulties fall back to easy.
func (c *Catalog) WordsByDifficulty(d Difficulty) []string {
	return slices.Clone(c.flat[ParseDifficulty(string(d))])
}

// WordsByTheme returns the words of one theme, or nil if the theme is unknown.
func (c *Catalog) WordsByTheme(d Difficulty, theme string) []string {
	for _, th := range c.themes[ParseDifficulty(string(d))] {
		if th.Name == theme {
			return slices.Clone(th.Words)
		}
	}
	return nil
}

// Themes returns the theme names of the easy tier.
func (c *Catalog) Themes() []string {
	names := make([]string, 0, len(c.themes[DifficultyEasy]))
	for _, th := range c.themes[DifficultyEasy] {
		names = append(names, th.Name)
	}
	return names
}

// RandomWord picks a word uniformly from WordsByDifficulty(d).
func (c *Catalog) RandomWord(rng *rand.Rand, d Difficulty) string {
	return pick(rng, c.flat[ParseDifficulty(string(d))])
}
