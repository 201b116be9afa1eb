package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdout is not a terminal; use \"countdown run <seconds>\"")

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newRootCommand() *cobra.Command {
	settings := config.Load()

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal countdown timer",
		Long: `countdown shows a countdown timer with Start, Pause and Reset controls.

Type a duration in seconds, then press enter (or ctrl+s) to start.
Tab moves between the input and the buttons.

CONFIGURATION:
  Flags override environment variables, which override defaults.
    COUNTDOWN_THEME        Theme name (default: teal)
    COUNTDOWN_ALT_SCREEN   Use the alternate screen (default: true)
    COUNTDOWN_DEBUG        Write a debug log (default: false)
    COUNTDOWN_LOG          Debug log path (default: $XDG_STATE_HOME/countdown/countdown.log)`,
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(settings)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&settings.Theme, "theme", settings.Theme, "Theme name (overrides "+config.EnvTheme+")")
	flags.BoolVar(&settings.AltScreen, "alt-screen", settings.AltScreen, "Use the alternate screen (overrides "+config.EnvAltScreen+")")
	flags.BoolVar(&settings.Debug, "debug", settings.Debug, "Write a debug log (overrides "+config.EnvDebug+")")
	flags.StringVar(&settings.LogPath, "log-file", settings.LogPath, "Debug log path (overrides "+config.EnvLogFile+")")

	cmd.AddCommand(newRunCommand())
	return cmd
}

func runTUI(settings config.Settings) error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	closeLog, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	model := tui.NewModel(settings.Theme)

	var opts []tea.ProgramOption
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to the debug log, or discards it so
// nothing is written over the screen.
func setupLogging(settings config.Settings) (func(), error) {
	if !settings.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := util.LogPath(config.AppName, settings.LogPath, config.LogFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.Printf("starting %s %s", config.AppName, tui.VersionLabel())
	return func() {
		util.LogError("close log", f.Close())
	}, nil
}
