package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boardtile/internal/tile"
)

// Config represents the full boardtile configuration document.
type Config struct {
	Tile  TileDefaults `yaml:"tile,omitempty"`
	Audio Audio        `yaml:"audio,omitempty"`
	Log   Log          `yaml:"log,omitempty"`
	Board Board        `yaml:"board"`
}

// TileDefaults apply to every tile unless a tile overrides them. Pointers
// distinguish "not set" from an explicit zero (a flat or square tile).
type TileDefaults struct {
	Depth        *float64 `yaml:"depth,omitempty" validate:"omitempty,gte=0,lte=40"`
	BorderRadius *float64 `yaml:"border_radius,omitempty" validate:"omitempty,gte=0,lte=20"`
	Width        float64  `yaml:"width,omitempty" validate:"omitempty,gte=1,lte=80"`
	Height       float64  `yaml:"height,omitempty" validate:"omitempty,gte=1,lte=40"`
}

// Audio configures the press cue.
type Audio struct {
	Enabled    *bool    `yaml:"enabled,omitempty"`
	Volume     *float64 `yaml:"volume,omitempty" validate:"omitempty,gte=0,lte=1"`
	SampleRate int      `yaml:"sample_rate,omitempty" validate:"omitempty,oneof=22050 44100 48000"`
}

// Log configures the application logger.
type Log struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Board lays tiles out in a grid.
type Board struct {
	Columns int        `yaml:"columns,omitempty" validate:"omitempty,gte=1,lte=12"`
	Tiles   []TileSpec `yaml:"tiles" validate:"required,min=1,max=64,dive"`
}

// TileSpec describes one tile on the board.
type TileSpec struct {
	Label        string        `yaml:"label,omitempty" validate:"max=16"`
	Color        string        `yaml:"color" validate:"required,tilecolor"`
	Enabled      *bool         `yaml:"enabled,omitempty"`
	Delay        time.Duration `yaml:"delay,omitempty" validate:"gte=0"`
	Depth        *float64      `yaml:"depth,omitempty" validate:"omitempty,gte=0,lte=40"`
	BorderRadius *float64      `yaml:"border_radius,omitempty" validate:"omitempty,gte=0,lte=20"`
}

const (
	defaultColumns    = 4
	defaultVolume     = 0.6
	defaultLogLevel   = "info"
	defaultTileCount  = 16
	defaultEntryDelay = 40 * time.Millisecond
)

var defaultPalette = []string{"#3498DB", "#2ECC71", "#E67E22", "#9B59B6"}

// Default returns the configuration used when no file is given: a 4x4
// board of numbered tiles that fade in one after another.
func Default() *Config {
	cfg := &Config{}
	for i := 0; i < defaultTileCount; i++ {
		cfg.Board.Tiles = append(cfg.Board.Tiles, TileSpec{
			Label: tile.NumberLabel(i + 1),
			Color: defaultPalette[i%len(defaultPalette)],
			Delay: time.Duration(i) * defaultEntryDelay,
		})
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Tile.Depth == nil {
		c.Tile.Depth = float64Ptr(tile.DefaultDepth)
	}
	if c.Tile.BorderRadius == nil {
		c.Tile.BorderRadius = float64Ptr(tile.DefaultBorderRadius)
	}
	if c.Tile.Width == 0 {
		c.Tile.Width = tile.DefaultWidth
	}
	if c.Tile.Height == 0 {
		c.Tile.Height = tile.DefaultHeight
	}
	if c.Audio.Enabled == nil {
		c.Audio.Enabled = boolPtr(true)
	}
	if c.Audio.Volume == nil {
		c.Audio.Volume = float64Ptr(defaultVolume)
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Board.Columns == 0 {
		c.Board.Columns = defaultColumns
	}
}

// AudioEnabled reports whether press cues should be played.
func (c *Config) AudioEnabled() bool {
	return c.Audio.Enabled == nil || *c.Audio.Enabled
}

// AudioVolume returns the configured cue volume in [0, 1].
func (c *Config) AudioVolume() float64 {
	if c.Audio.Volume == nil {
		return defaultVolume
	}
	return *c.Audio.Volume
}

// TileConfigs resolves every board tile into a tile.Config, applying the
// board-wide defaults underneath per-tile overrides.
func (c *Config) TileConfigs() []tile.Config {
	out := make([]tile.Config, 0, len(c.Board.Tiles))
	for _, spec := range c.Board.Tiles {
		tc := tile.DefaultConfig(lipgloss.Color(spec.Color))
		tc.Label = spec.Label
		tc.Delay = spec.Delay
		tc.Width = c.Tile.Width
		tc.Height = c.Tile.Height
		if c.Tile.Depth != nil {
			tc.Depth = *c.Tile.Depth
		}
		if c.Tile.BorderRadius != nil {
			tc.BorderRadius = *c.Tile.BorderRadius
		}
		if spec.Depth != nil {
			tc.Depth = *spec.Depth
		}
		if spec.BorderRadius != nil {
			tc.BorderRadius = *spec.BorderRadius
		}
		if spec.Enabled != nil {
			tc.Enabled = *spec.Enabled
		}
		out = append(out, tc)
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}

func float64Ptr(f float64) *float64 {
	return &f
}
