package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/boardtile/internal/audio"
	"github.com/alexisbeaulieu97/boardtile/internal/config"
	"github.com/alexisbeaulieu97/boardtile/internal/logger"
	"github.com/alexisbeaulieu97/boardtile/internal/tui/board"
	"github.com/alexisbeaulieu97/boardtile/internal/tui/components"
)

type rootFlags struct {
	configPath  string
	verbose     bool
	mute        bool
	noAnimation bool
	logFile     string
}

// interactive reports whether the board can take over the terminal.
var interactive = func(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "boardtile",
		Short:         "A board of pressable 3-D tiles in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a board config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&flags.mute, "mute", false, "Do not play press cues")
	cmd.Flags().BoolVar(&flags.noAnimation, "no-animation", false, "Jump between press states instead of easing")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newShadeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBoard(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tty := interactive(cmd.OutOrStdout())

	log, closeLog, err := newLogger(cfg, flags, tty, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	configs := cfg.TileConfigs()

	if !tty {
		log.Debug("output is not a terminal, rendering a static board")
		out, err := staticBoard(configs, cfg.Board.Columns)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	m, err := board.NewModel(configs, board.Options{
		Columns: cfg.Board.Columns,
		Cue:     newCue(cfg, flags, log),
		Animate: !flags.noAnimation,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}

	log.WithFields(map[string]any{"tiles": m.Len()}).Info("launching board")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		log.Error(err, "board execution failed")
		return fmt.Errorf("failed to run board: %w", err)
	}

	if done, ok := final.(board.Model); ok {
		stats := done.Stats()
		log.WithFields(map[string]any{
			"presses":  stats.Presses,
			"releases": stats.Releases,
		}).Info("board closed")
		fmt.Fprintln(cmd.OutOrStdout(), components.NewSummary(done.Summary()).View())
	}

	return nil
}

// newLogger picks the log destination. The board owns the terminal while it
// runs, so logs only go to stderr when nothing is drawn there.
func newLogger(cfg *config.Config, flags *rootFlags, tty bool, stderr io.Writer) (*logger.Logger, func(), error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	var writer io.Writer
	closeFn := func() {}
	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closeFn = func() { _ = file.Close() }
	case tty:
		return logger.Nop(), closeFn, nil
	default:
		writer = stderr
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable || flags.logFile == "",
		Writer:        writer,
	})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, closeFn, nil
}

func newCue(cfg *config.Config, flags *rootFlags, log *logger.Logger) audio.Cue {
	if flags.mute || !cfg.AudioEnabled() {
		return audio.Nop{}
	}

	cue, err := audio.NewBeepCue(audio.Options{
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.AudioVolume(),
	}, log)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("audio unavailable, press cues disabled")
		return audio.Nop{}
	}
	return cue
}
