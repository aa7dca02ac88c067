package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweeper/internal/config"
)

func TestParseCustom(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    config.Difficulty
		wantErr bool
	}{
		{"valid", []string{"40", "20", "150"}, config.Difficulty{ID: config.CustomID, Name: "Custom 40x20", Width: 40, Height: 20, Mines: 150}, false},
		{"no mines", []string{"5", "5", "0"}, config.Difficulty{ID: config.CustomID, Name: "Custom 5x5", Width: 5, Height: 5, Mines: 0}, false},
		{"not a number", []string{"x", "5", "3"}, config.Difficulty{}, true},
		{"too many mines", []string{"3", "3", "9"}, config.Difficulty{}, true},
		{"zero width", []string{"0", "3", "1"}, config.Difficulty{}, true},
		{"too few values", []string{"3", "3"}, config.Difficulty{}, true},
		{"huge board", []string{"1000000", "1000000", "1"}, config.Difficulty{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCustom(tc.args)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseCustom(%v) error = %v, wantErr %v", tc.args, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseCustom(%v) = %+v, expected %+v", tc.args, got, tc.want)
			}
		})
	}
}

func TestRootArgs(t *testing.T) {
	cmd := &cobra.Command{}
	defer func() { flagCustom = false }()

	flagCustom = false
	if err := rootArgs(cmd, nil); err != nil {
		t.Errorf("rootArgs() without --custom = %v, expected nil", err)
	}
	if err := rootArgs(cmd, []string{"9"}); err == nil {
		t.Error("positional args without --custom should fail")
	}

	flagCustom = true
	if err := rootArgs(cmd, []string{"9", "9", "10"}); err != nil {
		t.Errorf("rootArgs() with --custom = %v, expected nil", err)
	}
	if err := rootArgs(cmd, []string{"9", "9"}); err == nil {
		t.Error("--custom with two values should fail")
	}
}

func TestCreateDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := loadConfig(nil, nil); err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	g, err := createDifficulty("medium")
	if err != nil {
		t.Fatalf("createDifficulty(medium) failed: %v", err)
	}
	if g.ID() != "medium" {
		t.Errorf("createDifficulty(medium).ID() = %q", g.ID())
	}

	if _, err := createDifficulty("nightmare"); !errors.Is(err, errUnknownDifficulty) {
		t.Errorf("createDifficulty(nightmare) error = %v, expected errUnknownDifficulty", err)
	}
}
