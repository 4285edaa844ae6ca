package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mb "github.com/navalclash/navalclash-backend/models/battleship"
)

// Settings is the operator-facing game configuration. Per-game create
// requests may override the mode, mine count and starting player; the
// fleet roster and grid size come from here.
type Settings struct {
	GridSize       int            `yaml:"grid_size"`
	GameMode       string         `yaml:"game_mode"`
	MineCount      int            `yaml:"mine_count"`
	StartingPlayer string         `yaml:"starting_player"`
	Fleet          map[string]int `yaml:"fleet"`
}

func DefaultSettings() Settings {
	return Settings{
		GridSize:       mb.DefaultGridSize,
		GameMode:       "standard",
		MineCount:      0,
		StartingPlayer: "host",
		Fleet: map[string]int{
			"battleship": 1,
			"cruiser":    1,
			"destroyer":  2,
			"submarine":  2,
		},
	}
}

// LoadSettings reads the yaml settings file. An empty path means the
// built-in defaults. Fields left out of the file fall back to their
// defaults when translated by GameConfig.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	var settings Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}

var shipKindsByName = map[string]mb.ShipKind{
	"battleship": mb.ShipBattleship,
	"cruiser":    mb.ShipCruiser,
	"destroyer":  mb.ShipDestroyer,
	"submarine":  mb.ShipSubmarine,
}

// GameConfig translates the settings into the game package's config.
func (s Settings) GameConfig() (mb.GameConfig, error) {
	cfg := mb.NewDefaultGameConfig()

	if s.GridSize != 0 {
		if s.GridSize < 1 || s.GridSize > mb.MaxGridSize {
			return cfg, fmt.Errorf("grid_size must be between 1 and %d, got %d", mb.MaxGridSize, s.GridSize)
		}
		cfg.GridSize = s.GridSize
	}
	cfg.MineCount = s.MineCount

	switch s.GameMode {
	case "", "standard":
		cfg.Mode = mb.GameModeStandard
	case "extended":
		cfg.Mode = mb.GameModeExtended
	default:
		return cfg, fmt.Errorf("unknown game_mode: %q", s.GameMode)
	}

	switch s.StartingPlayer {
	case "", "host":
		cfg.StartingPlayer = mb.StartingPlayerHost
	case "random":
		cfg.StartingPlayer = mb.StartingPlayerRandom
	default:
		return cfg, fmt.Errorf("unknown starting_player: %q", s.StartingPlayer)
	}

	if len(s.Fleet) != 0 {
		fleet := make(mb.FleetSpec, len(s.Fleet))
		for name, count := range s.Fleet {
			kind, prs := shipKindsByName[name]
			if !prs {
				return cfg, fmt.Errorf("unknown ship kind in fleet: %q", name)
			}
			if count < 0 {
				return cfg, fmt.Errorf("negative count for ship kind %q", name)
			}
			fleet[kind] = count
		}
		cfg.Fleet = fleet
	}

	return cfg, nil
}
