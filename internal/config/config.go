// Package config provides YAML-based difficulty configuration for the
// minesweeper game.
package config

// Difficulty describes one board preset.
type Difficulty struct {
	ID     string `yaml:"id"`     // Used for CLI flags and score storage
	Name   string `yaml:"name"`   // Display name
	Width  int    `yaml:"width"`  // Columns
	Height int    `yaml:"height"` // Rows
	Mines  int    `yaml:"mines"`  // Number of mines
}

// Cells returns the number of cells on the board.
func (d Difficulty) Cells() int {
	return d.Width * d.Height
}

// Config is the top-level configuration file.
type Config struct {
	Default      string       `yaml:"default"` // Difficulty ID preselected in the picker
	Difficulties []Difficulty `yaml:"difficulties"`
}

// CustomID is the difficulty ID used for one-off games sized on the command line.
const CustomID = "custom"

// Find returns the difficulty with the given ID.
func (c Config) Find(id string) (Difficulty, bool) {
	for _, d := range c.Difficulties {
		if d.ID == id {
			return d, true
		}
	}
	return Difficulty{}, false
}

// IDs returns the configured difficulty IDs in file order.
func (c Config) IDs() []string {
	ids := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		ids[i] = d.ID
	}
	return ids
}
