package config

import (
	"errors"
	"fmt"
)

// ErrInvalidDifficulty is returned for a board preset that cannot be played.
var ErrInvalidDifficulty = errors.New("config: invalid difficulty")

// MaxSide is the largest accepted board width or height.
const MaxSide = 256

// Validate checks that the board can be generated with one cell left safe
// for the first reveal.
func (d Difficulty) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidDifficulty)
	case d.Width < 1 || d.Width > MaxSide:
		return fmt.Errorf("%w: %s: width %d (1..%d)", ErrInvalidDifficulty, d.ID, d.Width, MaxSide)
	case d.Height < 1 || d.Height > MaxSide:
		return fmt.Errorf("%w: %s: height %d (1..%d)", ErrInvalidDifficulty, d.ID, d.Height, MaxSide)
	case d.Mines < 0:
		return fmt.Errorf("%w: %s: negative mine count %d", ErrInvalidDifficulty, d.ID, d.Mines)
	case d.Mines >= d.Cells():
		return fmt.Errorf("%w: %s: %d mines do not fit on %dx%d", ErrInvalidDifficulty, d.ID, d.Mines, d.Width, d.Height)
	}
	return nil
}

// Validate checks every difficulty and the default selection.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties configured", ErrInvalidDifficulty)
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if err := d.Validate(); err != nil {
			return err
		}
		if d.ID == CustomID {
			return fmt.Errorf("%w: id %q is reserved", ErrInvalidDifficulty, CustomID)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidDifficulty, d.ID)
		}
		seen[d.ID] = true
	}

	if c.Default != "" && !seen[c.Default] {
		return fmt.Errorf("%w: default %q is not configured", ErrInvalidDifficulty, c.Default)
	}
	return nil
}

// Custom builds a one-off difficulty from command-line dimensions.
func Custom(width, height, mines int) (Difficulty, error) {
	d := Difficulty{
		ID:     CustomID,
		Name:   fmt.Sprintf("Custom %dx%d", width, height),
		Width:  width,
		Height: height,
		Mines:  mines,
	}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}
