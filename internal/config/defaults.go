package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in difficulties.
func DefaultConfig() Config {
	return Config{
		Default: "easy",
		Difficulties: []Difficulty{
			{ID: "easy", Name: "Easy", Width: 9, Height: 9, Mines: 10},
			{ID: "medium", Name: "Medium", Width: 16, Height: 16, Mines: 40},
			{ID: "hard", Name: "Hard", Width: 30, Height: 16, Mines: 99},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
