// Package board hosts tiles in a bubbletea program. It is the touch source
// (mouse press/release, or keyboard with a timed release) and the rendering
// layer that turns layout-animation requests into spring motion. Tiles on
// the board are independent; the board only routes events to them.
package board

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/boardtile/internal/audio"
	"github.com/alexisbeaulieu97/boardtile/internal/layout"
	"github.com/alexisbeaulieu97/boardtile/internal/logger"
	"github.com/alexisbeaulieu97/boardtile/internal/tile"
	"github.com/alexisbeaulieu97/boardtile/internal/tui/components"
)

// DefaultKeyHold is how long a keyboard press keeps a tile down.
const DefaultKeyHold = 150 * time.Millisecond

// Options configures a board Model.
type Options struct {
	Columns  int
	Cue      audio.Cue
	Animate  bool
	Spring   layout.SpringOptions
	Renderer tile.Renderer
	KeyHold  time.Duration
	Logger   *logger.Logger
}

// Stats is what the board's press callbacks record.
type Stats struct {
	Presses  int
	Releases int
	Last     string
	PerTile  []int // presses per tile index
}

type slot struct {
	tile     *tile.Tile
	motion   *layout.Motion
	revealed bool
	delay    time.Duration
	keySeq   int // latest keyboard press, matched against ReleaseMsg.Seq
}

// Model is the board model
type Model struct {
	slots    []slot
	columns  int
	renderer tile.Renderer
	spring   *layout.Spring
	keyHold  time.Duration
	logger   *logger.Logger

	keys   keyMap
	help   help.Model
	reveal components.Progress

	cursor    int
	held      int // tile held by the pointer, -1 when none
	animating bool
	stats     *Stats

	width  int
	height int
}

// NewModel builds a tile per config. The board wraps each tile's press
// callbacks to keep Stats, then calls the caller's own callbacks.
func NewModel(configs []tile.Config, opts Options) (Model, error) {
	if opts.Columns <= 0 {
		opts.Columns = 4
	}
	if opts.Renderer == (tile.Renderer{}) {
		opts.Renderer = tile.DefaultRenderer()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	if opts.Cue == nil {
		opts.Cue = audio.Nop{}
	}

	m := Model{
		columns:  opts.Columns,
		renderer: opts.Renderer,
		spring:   layout.NewSpring(opts.Spring),
		keyHold:  opts.KeyHold,
		logger:   opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		held:     -1,
		stats:    &Stats{},
		width:    80,
		height:   24,
	}

	for i, cfg := range configs {
		m.stats.PerTile = append(m.stats.PerTile, 0)
		cfg = m.wrapCallbacks(i, cfg)

		tileOpts := []tile.Option{tile.WithCue(opts.Cue), tile.WithLogger(opts.Logger)}
		if opts.Animate {
			tileOpts = append(tileOpts, tile.WithTrigger(m.spring))
		}

		t, err := tile.New(cfg, tileOpts...)
		if err != nil {
			return Model{}, fmt.Errorf("tile %d: %w", i, err)
		}

		m.slots = append(m.slots, slot{
			tile:     t,
			motion:   m.spring.NewMotion(t.Faces().Face.OffsetTop),
			revealed: cfg.Delay <= 0,
			delay:    cfg.Delay,
		})
	}

	m.reveal = components.NewProgress(len(m.slots))
	return m, nil
}

func (m Model) wrapCallbacks(i int, cfg tile.Config) tile.Config {
	stats := m.stats
	label := cfg.Label
	onIn, onOut := cfg.OnPressIn, cfg.OnPressOut

	cfg.OnPressIn = func() {
		stats.Presses++
		stats.PerTile[i]++
		stats.Last = fmt.Sprintf("%s pressed", label)
		if onIn != nil {
			onIn()
		}
	}
	cfg.OnPressOut = func() {
		stats.Releases++
		stats.Last = fmt.Sprintf("%s released", label)
		if onOut != nil {
			onOut()
		}
	}
	return cfg
}

// Init schedules the entry reveal of every delayed tile
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i, s := range m.slots {
		if !s.revealed {
			cmds = append(cmds, revealCmd(i, s.delay))
		}
	}
	return tea.Batch(cmds...)
}

// Tile returns the tile at index i.
func (m Model) Tile(i int) *tile.Tile {
	if i < 0 || i >= len(m.slots) {
		return nil
	}
	return m.slots[i].tile
}

// Len is the number of tiles on the board.
func (m Model) Len() int {
	return len(m.slots)
}

// Stats returns a snapshot of the press counters.
func (m Model) Stats() Stats {
	st := *m.stats
	st.PerTile = append([]int(nil), m.stats.PerTile...)
	return st
}

// Summary collects the session's press counts per tile.
func (m Model) Summary() components.SummaryData {
	data := components.SummaryData{Presses: m.stats.Presses, Releases: m.stats.Releases}
	for i, s := range m.slots {
		data.Tiles = append(data.Tiles, components.TilePresses{Label: s.tile.Label(), Presses: m.stats.PerTile[i]})
	}
	return data
}

// Revealed counts tiles whose entry delay has passed.
func (m Model) Revealed() int {
	n := 0
	for _, s := range m.slots {
		if s.revealed {
			n++
		}
	}
	return n
}

// Cursor is the keyboard-focused tile.
func (m Model) Cursor() int {
	return m.cursor
}

// rect is a tile's on-screen cell in terminal coordinates.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// grid measures every slot. Column widths and row heights are the largest
// tile in that column or row; the idle layout is used because a tile's
// total height does not change when pressed.
func (m Model) grid() ([]rect, []int, []int) {
	cols := min(m.columns, max(1, len(m.slots)))
	rowCount := (len(m.slots) + cols - 1) / cols
	colWidths := make([]int, cols)
	rowHeights := make([]int, rowCount)

	layouts := make([]tile.Layout, len(m.slots))
	for i, s := range m.slots {
		cfg := s.tile.Config()
		faces := tile.ComputeFaces(cfg.Depth, cfg.BorderRadius, cfg.BackgroundColor, false)
		layouts[i] = m.renderer.Layout(faces, cfg.Width, cfg.Height)
		col, row := i%cols, i/cols
		colWidths[col] = max(colWidths[col], layouts[i].Columns)
		rowHeights[row] = max(rowHeights[row], layouts[i].Rows)
	}

	rects := make([]rect, len(m.slots))
	y := headerRows
	for row := 0; row < rowCount; row++ {
		x := 0
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(m.slots) {
				break
			}
			rects[i] = rect{x: x, y: y, w: colWidths[col], h: rowHeights[row]}
			x += colWidths[col] + columnGap
		}
		y += rowHeights[row] + cursorRows
	}

	return rects, colWidths, rowHeights
}

// hit returns the revealed tile under (x, y), or -1.
func (m Model) hit(x, y int) int {
	rects, _, _ := m.grid()
	for i, r := range rects {
		if r.contains(x, y) && m.slots[i].revealed {
			return i
		}
	}
	return -1
}
