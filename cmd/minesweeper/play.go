package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/minesweeper/internal/platform/tui"
	"github.com/vovakirdan/minesweeper/internal/registry"
	"github.com/vovakirdan/minesweeper/internal/sessions"
	"github.com/vovakirdan/minesweeper/internal/storage"
)

// errUnknownDifficulty is returned for a -d or scores id that is not configured.
var errUnknownDifficulty = errors.New("unknown difficulty")

func runRoot(_ *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	sessionID := string(sessions.NewID("local"))
	focus := appConfig.Default

	var game registry.Game
	switch {
	case flagCustom:
		d, err := parseCustom(args)
		if err != nil {
			return err
		}
		g, err := minesweeper.NewGame(d)
		if err != nil {
			return err
		}
		game = g

	case flagDifficulty != "":
		g, err := createDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		game = g
	}

	if game != nil {
		back, err := tui.Run(game, store, cfg, sessionID)
		if err != nil || !back {
			return err
		}
		focus = game.ID()
	}

	return menuLoop(store, cfg, sessionID, focus)
}

// menuLoop alternates between the picker, a game and the scoreboard until the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, sessionID, focus string) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg, focus)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := createDifficulty(menuResult.GameID)
		if err != nil {
			return err
		}
		focus = game.ID()

		back, err := tui.Run(game, store, cfg, sessionID)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// createDifficulty instantiates a registered difficulty.
func createDifficulty(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("%w %q (configured: %v)", errUnknownDifficulty, id, appConfig.IDs())
	}
	return registry.Create(id)
}

// parseCustom turns "<width> <height> <mines>" into a validated difficulty.
func parseCustom(args []string) (config.Difficulty, error) {
	if len(args) != 3 {
		return config.Difficulty{}, fmt.Errorf("custom game needs <width> <height> <mines>, got %d values", len(args))
	}

	names := [3]string{"width", "height", "mines"}
	var v [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return config.Difficulty{}, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		v[i] = n
	}

	return config.Custom(v[0], v[1], v[2])
}

// runtimeConfig builds the game runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open results database, times will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
