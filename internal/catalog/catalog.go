// Package catalog holds the content pools the games draw from. Built-in
// pools can be replaced from a TOML file.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/miguel/internal/shadow"
)

// SyllableWord is a word split into the syllables a child assembles.
type SyllableWord struct {
	Level     int      `toml:"level"`
	Syllables []string `toml:"syllables"`
	Emoji     string   `toml:"emoji"`
}

// Background is a puzzle picture: one emoji per tile, blank excluded.
type Background struct {
	Name  string   `toml:"name"`
	Tiles []string `toml:"tiles"`
}

// Fallback is static text shown when generated content is unavailable.
type Fallback struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
	Moral string `toml:"moral"`
}

// Catalog is the full set of content pools.
type Catalog struct {
	WordSearch  []string       `toml:"word_search"`
	Words       []SyllableWord `toml:"words"`
	Shadows     []shadow.Item  `toml:"shadows"`
	Backgrounds []Background   `toml:"backgrounds"`
	Stories     []Fallback     `toml:"stories"`
	Devotionals []Fallback     `toml:"devotionals"`
}

// WordsForLevel returns the syllable words of one level.
func (c *Catalog) WordsForLevel(level int) []SyllableWord {
	var out []SyllableWord
	for _, w := range c.Words {
		if w.Level == level {
			out = append(out, w)
		}
	}
	return out
}

// BackgroundNames lists the puzzle backgrounds by name.
func (c *Catalog) BackgroundNames() []string {
	names := make([]string, len(c.Backgrounds))
	for i, b := range c.Backgrounds {
		names[i] = b.Name
	}
	return names
}

// Background returns the background called name.
func (c *Catalog) Background(name string) (Background, bool) {
	for _, b := range c.Backgrounds {
		if b.Name == name {
			return b, true
		}
	}
	return Background{}, false
}

// Load returns the built-in catalog with any non-empty pool from the TOML
// file at path replacing its default. Missing file is not an error.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}

	var override Catalog
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	c.merge(&override)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.WordSearch) > 0 {
		c.WordSearch = o.WordSearch
	}
	if len(o.Words) > 0 {
		c.Words = o.Words
	}
	if len(o.Shadows) > 0 {
		c.Shadows = o.Shadows
	}
	if len(o.Backgrounds) > 0 {
		c.Backgrounds = o.Backgrounds
	}
	if len(o.Stories) > 0 {
		c.Stories = o.Stories
	}
	if len(o.Devotionals) > 0 {
		c.Devotionals = o.Devotionals
	}
}

// Validate checks that every pool can fill a round.
func (c *Catalog) Validate() error {
	if len(c.WordSearch) == 0 {
		return fmt.Errorf("catalog: word_search pool is empty")
	}
	for level := 1; level <= 4; level++ {
		if len(c.WordsForLevel(level)) == 0 {
			return fmt.Errorf("catalog: no words for level %d", level)
		}
	}
	spelled := make(map[int]map[string]bool)
	for _, w := range c.Words {
		if len(w.Syllables) == 0 {
			return fmt.Errorf("catalog: word with no syllables at level %d", w.Level)
		}
		text := strings.Join(w.Syllables, "")
		if spelled[w.Level] == nil {
			spelled[w.Level] = make(map[string]bool)
		}
		if spelled[w.Level][text] {
			return fmt.Errorf("catalog: word %q appears twice at level %d", text, w.Level)
		}
		spelled[w.Level][text] = true
	}
	if len(c.Shadows) < shadow.DefaultChoices {
		return fmt.Errorf("catalog: need at least %d shadows, have %d", shadow.DefaultChoices, len(c.Shadows))
	}
	for _, b := range c.Backgrounds {
		if len(b.Tiles) != 8 {
			return fmt.Errorf("catalog: background %q needs 8 tiles, has %d", b.Name, len(b.Tiles))
		}
	}
	if len(c.Backgrounds) == 0 {
		return fmt.Errorf("catalog: no puzzle backgrounds")
	}
	return nil
}
